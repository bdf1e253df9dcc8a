package chat

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"github.com/banterhq/banter/internal/http/authz"
	"github.com/banterhq/banter/internal/session"
	"github.com/banterhq/banter/internal/slogx"
)

// Client-visible mutation outcomes. The underlying cause of a store
// failure never leaves the server logs.
const (
	ResultUnauthorized       = "Unauthorized"
	ResultMissingPermissions = "Missing Permissions"
	ResultInvalidBody        = "Invalid body"
	ResultDataFormatIssue    = "Data Format Issue"
	ResultDatabaseError      = "Database Error"
)

type Result struct {
	Error string
}

func (r Result) OK() bool {
	return r.Error == ""
}

func failure(code string) Result {
	return Result{Error: code}
}

// MessageStore is the persistence boundary the guard mutates through.
type MessageStore interface {
	Insert(ctx context.Context, authorID uint, content string) error
	UpdateContentByID(ctx context.Context, id uint, content string) error
	DeleteByID(ctx context.Context, id uint) error
}

// Guard wraps every state-changing chat operation with the same sequence:
// session presence, permission, input validation, store call, stale-view
// notification. The session is always an explicit parameter, never read
// from ambient state. Failed store calls are never retried.
type Guard struct {
	perms    authz.Permissions
	messages MessageStore

	mu          sync.Mutex
	subscribers []SubscriberFunc
}

func NewGuard(perms authz.Permissions, messages MessageStore) *Guard {
	return &Guard{
		perms:    perms,
		messages: messages,
	}
}

// PostMessage appends a message authored by the session user. The author
// id always comes from the session, never from client input.
func (g *Guard) PostMessage(ctx context.Context, sess *session.Session, rawText string) Result {
	if sess == nil {
		return failure(ResultUnauthorized)
	}

	if !g.perms.Has(sess.Roles, authz.ActionCreate) {
		return failure(ResultMissingPermissions)
	}

	text := ValidateMessageText(rawText)
	if !text.Valid {
		return failure(ResultInvalidBody)
	}

	if err := g.messages.Insert(ctx, sess.UserID, text.Value); err != nil {
		slog.ErrorContext(ctx, "could not insert message", slogx.Error(errors.WithStack(err)))
		return failure(ResultDatabaseError)
	}

	g.notify(authz.ActionCreate, 0)

	return Result{}
}

// EditMessage replaces the content of the target message. Ownership is
// not checked here: the permission gates the action, and the UI only
// offers the control on the user's own messages.
func (g *Guard) EditMessage(ctx context.Context, sess *session.Session, rawID string, rawText string) Result {
	if sess == nil {
		return failure(ResultUnauthorized)
	}

	if !g.perms.Has(sess.Roles, authz.ActionEdit) {
		return failure(ResultMissingPermissions)
	}

	id := ValidateMessageID(rawID)
	if !id.Valid {
		return failure(ResultDataFormatIssue)
	}

	text := ValidateMessageText(rawText)
	if !text.Valid {
		return failure(ResultDataFormatIssue)
	}

	if err := g.messages.UpdateContentByID(ctx, id.Value, text.Value); err != nil {
		slog.ErrorContext(ctx, "could not update message", slogx.Error(errors.WithStack(err)))
		return failure(ResultDatabaseError)
	}

	g.notify(authz.ActionEdit, id.Value)

	return Result{}
}

// DeleteMessage removes the target message. Deleting an id that no longer
// exists succeeds.
func (g *Guard) DeleteMessage(ctx context.Context, sess *session.Session, rawID string) Result {
	if sess == nil {
		return failure(ResultUnauthorized)
	}

	if !g.perms.Has(sess.Roles, authz.ActionDelete) {
		return failure(ResultMissingPermissions)
	}

	id := ValidateMessageID(rawID)
	if !id.Valid {
		return failure(ResultDataFormatIssue)
	}

	if err := g.messages.DeleteByID(ctx, id.Value); err != nil {
		slog.ErrorContext(ctx, "could not delete message", slogx.Error(errors.WithStack(err)))
		return failure(ResultDatabaseError)
	}

	g.notify(authz.ActionDelete, id.Value)

	return Result{}
}
