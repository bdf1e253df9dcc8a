package context

import (
	"context"

	"github.com/banterhq/banter/internal/session"
)

const keySession = "session"

// Session returns the authenticated session attached to the request
// context, or nil when the request is anonymous.
func Session(ctx context.Context) *session.Session {
	sess, ok := ctx.Value(keySession).(*session.Session)
	if !ok {
		return nil
	}

	return sess
}

func SetSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, keySession, sess)
}
