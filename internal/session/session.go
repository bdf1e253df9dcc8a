package session

import (
	"slices"

	"github.com/google/uuid"
)

// Session is the authenticated identity assembled once per login. It is
// the sole authorization input downstream: the role grant set is fixed
// until the next login, never re-derived mid-request.
type Session struct {
	UserID     uint
	ExternalID uuid.UUID
	Username   string
	Roles      []string
}

func (s *Session) HasRole(role string) bool {
	return s != nil && slices.Contains(s.Roles, role)
}
