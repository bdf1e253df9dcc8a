package authn

import (
	"encoding/gob"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"

	"github.com/banterhq/banter/internal/session"
	"github.com/banterhq/banter/internal/slogx"
)

const sessionAttr = "s"

var errSessionNotFound = errors.New("session not found")

func init() {
	gob.Register(&session.Session{})
}

func (h *Handler) storeSession(w http.ResponseWriter, r *http.Request, sess *session.Session) error {
	cookieSess, err := h.getSession(r)
	if err != nil {
		return errors.WithStack(err)
	}

	cookieSess.Values[sessionAttr] = sess

	if err := cookieSess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (h *Handler) retrieveSession(r *http.Request) (*session.Session, error) {
	cookieSess, err := h.getSession(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sess, ok := cookieSess.Values[sessionAttr].(*session.Session)
	if !ok {
		return nil, errors.WithStack(errSessionNotFound)
	}

	return sess, nil
}

func (h *Handler) getSession(r *http.Request) (*sessions.Session, error) {
	cookieSess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		slog.ErrorContext(r.Context(), "could not retrieve session from store", slogx.Error(errors.WithStack(err)))
		return cookieSess, errors.WithStack(errSessionNotFound)
	}

	return cookieSess, nil
}

func (h *Handler) clearSession(w http.ResponseWriter, r *http.Request) error {
	cookieSess, err := h.getSession(r)
	if err != nil && !errors.Is(err, errSessionNotFound) {
		return errors.WithStack(err)
	}

	if cookieSess == nil {
		return nil
	}

	cookieSess.Options.MaxAge = -1

	if err := cookieSess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
