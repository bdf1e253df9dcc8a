package authz

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"

	httpCtx "github.com/banterhq/banter/internal/http/context"
	"github.com/banterhq/banter/internal/session"
	"github.com/banterhq/banter/internal/slogx"
)

type AssertFunc func(ctx context.Context, sess *session.Session) (bool, error)

func IsAuthenticated(ctx context.Context, sess *session.Session) (bool, error) {
	return sess != nil, nil
}

func Can(perms Permissions, action string) AssertFunc {
	return func(ctx context.Context, sess *session.Session) (bool, error) {
		return sess != nil && perms.Has(sess.Roles, action), nil
	}
}

func HasRole(role string) AssertFunc {
	return func(ctx context.Context, sess *session.Session) (bool, error) {
		return sess.HasRole(role), nil
	}
}

func OneOf(funcs ...AssertFunc) AssertFunc {
	return func(ctx context.Context, sess *session.Session) (bool, error) {
		for _, fn := range funcs {
			allowed, err := fn(ctx, sess)
			if err != nil {
				return false, errors.WithStack(err)
			}

			if allowed {
				return true, nil
			}
		}

		return false, nil
	}
}

func Assert(ctx context.Context, sess *session.Session, funcs ...AssertFunc) (bool, error) {
	for _, fn := range funcs {
		allowed, err := fn(ctx, sess)
		if err != nil {
			return false, errors.WithStack(err)
		}

		if !allowed {
			return false, nil
		}
	}

	return true, nil
}

func Middleware(forbidden http.Handler, funcs ...AssertFunc) func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			sess := httpCtx.Session(ctx)

			allowed, err := Assert(ctx, sess, funcs...)
			if err != nil {
				slog.ErrorContext(ctx, "could not assert session authorizations", slogx.Error(errors.WithStack(err)))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if !allowed {
				if forbidden == nil {
					http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				} else {
					forbidden.ServeHTTP(w, r)
				}
				return
			}

			h.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}
