package authn

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/pkg/errors"

	"github.com/banterhq/banter/internal/session"
	"github.com/banterhq/banter/internal/slogx"
)

func (h *Handler) handleProvider(w http.ResponseWriter, r *http.Request) {
	if _, err := gothic.CompleteUserAuth(w, r); err == nil {
		http.Redirect(w, r, "/auth/logout", http.StatusTemporaryRedirect)
	} else {
		gothic.BeginAuthHandler(w, r)
	}
}

// handleProviderCallback assembles the session for a completed provider
// exchange. Every step is a hard gate: a failure anywhere leaves no
// partial session and sends the user back through the login flow.
func (h *Handler) handleProviderCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	gothUser, err := gothic.CompleteUserAuth(w, r)
	if err != nil {
		slog.ErrorContext(ctx, "could not complete user auth", slogx.Error(errors.WithStack(err)))
		http.Redirect(w, r, "/auth/logout", http.StatusTemporaryRedirect)
		return
	}

	claims, err := DecodeAccessToken(gothUser.AccessToken, h.clientID)
	if err != nil {
		slog.ErrorContext(ctx, "could not decode access token", slogx.Error(errors.WithStack(err)))
		http.Redirect(w, r, "/auth/logout", http.StatusTemporaryRedirect)
		return
	}

	externalID, err := uuid.Parse(claims.Subject)
	if err != nil {
		slog.ErrorContext(ctx, "could not parse token subject", slogx.Error(errors.WithStack(err)))
		http.Redirect(w, r, "/auth/logout", http.StatusTemporaryRedirect)
		return
	}

	username := getUsername(claims, gothUser)
	if username == "" {
		slog.ErrorContext(ctx, "could not authenticate user", slogx.Error(errors.New("username missing")))
		http.Redirect(w, r, "/auth/logout", http.StatusTemporaryRedirect)
		return
	}

	user, err := h.provisioner.Provision(ctx, externalID, username)
	if err != nil {
		// The cause stays in the logs; the client only sees the login refusal.
		slog.ErrorContext(ctx, "login refused: could not provision user record", slogx.Error(errors.WithStack(err)))
		http.Redirect(w, r, "/auth/logout", http.StatusTemporaryRedirect)
		return
	}

	sess := &session.Session{
		UserID:     user.ID,
		ExternalID: externalID,
		Username:   user.Name,
		Roles:      claims.MergedRoles(),
	}

	if err := h.storeSession(w, r, sess); err != nil {
		slog.ErrorContext(ctx, "could not store session", slogx.Error(errors.WithStack(err)))
		http.Redirect(w, r, "/auth/logout", http.StatusTemporaryRedirect)
		return
	}

	slog.InfoContext(ctx, "user logged in", slog.Uint64("user_id", uint64(user.ID)), slog.String("username", user.Name))

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	_, err := h.retrieveSession(r)
	hadSession := err == nil

	if err := h.clearSession(w, r); err != nil && !errors.Is(err, errSessionNotFound) {
		slog.ErrorContext(r.Context(), "could not clear session", slogx.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if !hadSession {
		http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
		return
	}

	if len(h.providers) == 0 {
		http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
		return
	}

	redirectURL := fmt.Sprintf("/auth/providers/%s/logout", h.providers[0].ID)

	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}

func (h *Handler) handleProviderLogout(w http.ResponseWriter, r *http.Request) {
	if err := gothic.Logout(w, r); err != nil {
		slog.ErrorContext(r.Context(), "could not complete provider logout", slogx.Error(errors.WithStack(err)))
	}

	http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
}

func getUsername(claims *Claims, user goth.User) string {
	if claims.PreferredUsername != "" {
		return claims.PreferredUsername
	}

	if user.NickName != "" {
		return user.NickName
	}

	if user.Name != "" {
		return user.Name
	}

	return user.UserID
}
