package store

import "time"

type Message struct {
	ID        uint   `gorm:"primarykey"`
	Content   string `gorm:"not null"`
	AuthorID  uint   `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MessageWithAuthor is the projection used by the chat stream: the author
// name is joined live, so renaming a user retroactively reattributes their
// messages.
type MessageWithAuthor struct {
	ID         uint
	AuthorID   uint
	AuthorName string
	Content    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
