package chat

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/banterhq/banter/internal/http/authz"
	"github.com/banterhq/banter/internal/session"
)

type fakeMessageStore struct {
	insertAuthorID uint
	insertContent  string
	updatedID      uint
	updatedContent string
	deletedID      uint
	calls          int
	err            error
}

func (s *fakeMessageStore) Insert(ctx context.Context, authorID uint, content string) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.insertAuthorID = authorID
	s.insertContent = content
	return nil
}

func (s *fakeMessageStore) UpdateContentByID(ctx context.Context, id uint, content string) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.updatedID = id
	s.updatedContent = content
	return nil
}

func (s *fakeMessageStore) DeleteByID(ctx context.Context, id uint) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.deletedID = id
	return nil
}

func newTestSession(roles ...string) *session.Session {
	return &session.Session{
		UserID:     12,
		ExternalID: uuid.MustParse("7a6bfd52-9965-4b5b-9e1f-004195a4c01e"),
		Username:   "alice",
		Roles:      roles,
	}
}

func TestGuardRequiresSession(t *testing.T) {
	store := &fakeMessageStore{}
	guard := NewGuard(authz.DefaultPermissions(), store)

	ctx := context.Background()

	for name, result := range map[string]Result{
		"post":   guard.PostMessage(ctx, nil, "hello"),
		"edit":   guard.EditMessage(ctx, nil, "1", "hello"),
		"delete": guard.DeleteMessage(ctx, nil, "1"),
	} {
		if result.Error != ResultUnauthorized {
			t.Errorf("%s without session: error = %q, expected %q", name, result.Error, ResultUnauthorized)
		}
	}

	if store.calls != 0 {
		t.Errorf("store was called %d times without a session", store.calls)
	}
}

func TestGuardRequiresPermission(t *testing.T) {
	store := &fakeMessageStore{}
	guard := NewGuard(authz.DefaultPermissions(), store)

	ctx := context.Background()
	sess := newTestSession(authz.RoleUser)

	if result := guard.DeleteMessage(ctx, sess, "1"); result.Error != ResultMissingPermissions {
		t.Errorf("standard user delete: error = %q, expected %q", result.Error, ResultMissingPermissions)
	}

	if result := guard.EditMessage(ctx, sess, "1", "hello"); result.Error != ResultMissingPermissions {
		t.Errorf("standard user edit: error = %q, expected %q", result.Error, ResultMissingPermissions)
	}

	if store.calls != 0 {
		t.Errorf("store was called %d times without permission", store.calls)
	}
}

func TestGuardValidatesInput(t *testing.T) {
	store := &fakeMessageStore{}
	guard := NewGuard(authz.DefaultPermissions(), store)

	ctx := context.Background()
	sess := newTestSession(authz.RoleAdmin)

	if result := guard.PostMessage(ctx, sess, "   "); result.Error != ResultInvalidBody {
		t.Errorf("blank post: error = %q, expected %q", result.Error, ResultInvalidBody)
	}

	if result := guard.EditMessage(ctx, sess, "abc", "hello"); result.Error != ResultDataFormatIssue {
		t.Errorf("non-integer edit id: error = %q, expected %q", result.Error, ResultDataFormatIssue)
	}

	if result := guard.EditMessage(ctx, sess, "1", ""); result.Error != ResultDataFormatIssue {
		t.Errorf("blank edit text: error = %q, expected %q", result.Error, ResultDataFormatIssue)
	}

	if result := guard.DeleteMessage(ctx, sess, "abc"); result.Error != ResultDataFormatIssue {
		t.Errorf("non-integer delete id: error = %q, expected %q", result.Error, ResultDataFormatIssue)
	}

	if store.calls != 0 {
		t.Errorf("store was called %d times with invalid input", store.calls)
	}
}

func TestGuardPostUsesSessionAuthor(t *testing.T) {
	store := &fakeMessageStore{}
	guard := NewGuard(authz.DefaultPermissions(), store)

	sess := newTestSession(authz.RoleUser)

	result := guard.PostMessage(context.Background(), sess, "  hello  ")
	if !result.OK() {
		t.Fatalf("post failed: %q", result.Error)
	}

	if store.insertAuthorID != sess.UserID {
		t.Errorf("insert author id = %d, expected session user id %d", store.insertAuthorID, sess.UserID)
	}

	if store.insertContent != "hello" {
		t.Errorf("insert content = %q, expected trimmed %q", store.insertContent, "hello")
	}
}

func TestGuardStoreFailure(t *testing.T) {
	store := &fakeMessageStore{err: errors.New("connection lost")}
	guard := NewGuard(authz.DefaultPermissions(), store)

	var events []Event
	guard.Subscribe(func(evt Event) {
		events = append(events, evt)
	})

	sess := newTestSession(authz.RoleAdmin)

	if result := guard.PostMessage(context.Background(), sess, "hello"); result.Error != ResultDatabaseError {
		t.Errorf("failing insert: error = %q, expected %q", result.Error, ResultDatabaseError)
	}

	if len(events) != 0 {
		t.Errorf("got %d invalidation events for a failed mutation", len(events))
	}
}

func TestGuardEmitsEvents(t *testing.T) {
	store := &fakeMessageStore{}
	guard := NewGuard(authz.DefaultPermissions(), store)

	var events []Event
	guard.Subscribe(func(evt Event) {
		events = append(events, evt)
	})

	ctx := context.Background()
	sess := newTestSession(authz.RoleAdmin)

	if result := guard.PostMessage(ctx, sess, "hello"); !result.OK() {
		t.Fatalf("post failed: %q", result.Error)
	}

	if result := guard.EditMessage(ctx, sess, "3", "updated"); !result.OK() {
		t.Fatalf("edit failed: %q", result.Error)
	}

	if result := guard.DeleteMessage(ctx, sess, "3"); !result.OK() {
		t.Fatalf("delete failed: %q", result.Error)
	}

	if len(events) != 3 {
		t.Fatalf("got %d events, expected 3", len(events))
	}

	expectedActions := []string{authz.ActionCreate, authz.ActionEdit, authz.ActionDelete}
	for idx, evt := range events {
		if evt.Action != expectedActions[idx] {
			t.Errorf("event %d action = %q, expected %q", idx, evt.Action, expectedActions[idx])
		}

		if evt.ID == "" {
			t.Errorf("event %d has no id", idx)
		}
	}

	if events[1].MessageID != 3 {
		t.Errorf("edit event message id = %d, expected 3", events[1].MessageID)
	}
}
