package store

import (
	"time"

	"github.com/google/uuid"
)

// User is the durable local record backing an identity issued by the
// external provider. ExternalID holds the 16 raw bytes of the provider
// subject UUID; exactly one row exists per distinct external id.
type User struct {
	ID         uint   `gorm:"primarykey"`
	ExternalID []byte `gorm:"type:blob;uniqueIndex;not null"`
	Name       string `gorm:"uniqueIndex;not null"`
	CreatedAt  time.Time

	Messages []*Message `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func NewUser(externalID uuid.UUID, name string) *User {
	return &User{
		ExternalID: externalID[:],
		Name:       name,
	}
}

// ExternalUUID returns the canonical string form of the stored external id.
func (u *User) ExternalUUID() uuid.UUID {
	id, err := uuid.FromBytes(u.ExternalID)
	if err != nil {
		return uuid.Nil
	}

	return id
}
