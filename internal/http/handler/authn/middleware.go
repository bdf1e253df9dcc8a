package authn

import (
	"log/slog"
	"net/http"

	"github.com/pkg/errors"

	httpCtx "github.com/banterhq/banter/internal/http/context"
	"github.com/banterhq/banter/internal/slogx"
)

// Middleware attaches the already-assembled session to the request
// context. Requests without a session are sent to the login page; no
// re-decoding of provider tokens happens here.
func (h *Handler) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			sess, err := h.retrieveSession(r)
			if err != nil {
				slog.DebugContext(r.Context(), "could not retrieve session", slogx.Error(errors.WithStack(err)))
				http.Redirect(w, r, "/auth/login", http.StatusTemporaryRedirect)
				return
			}

			ctx := httpCtx.SetSession(r.Context(), sess)

			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}
