package message

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/banterhq/banter/internal/store"
)

// ListAll retrieves the whole message stream joined to the authors'
// current names, ordered by creation time ascending.
func (r *Repository) ListAll(ctx context.Context) ([]*store.MessageWithAuthor, error) {
	var messages []*store.MessageWithAuthor

	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		err := db.Model(&store.Message{}).
			Select("messages.id, messages.author_id, users.name AS author_name, messages.content, messages.created_at, messages.updated_at").
			Joins("INNER JOIN users ON users.id = messages.author_id").
			Order("messages.created_at ASC, messages.id ASC").
			Scan(&messages).Error
		if err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return messages, nil
}

// Insert appends a message authored by the given user.
func (r *Repository) Insert(ctx context.Context, authorID uint, content string) error {
	return r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		message := &store.Message{
			Content:  content,
			AuthorID: authorID,
		}

		if err := db.Create(message).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
}

// DeleteByID removes a message. Deleting an absent id is a no-op.
func (r *Repository) DeleteByID(ctx context.Context, id uint) error {
	return r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Delete(&store.Message{}, id).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
}

// UpdateContentByID replaces a message's content and refreshes its
// updated_at timestamp.
func (r *Repository) UpdateContentByID(ctx context.Context, id uint, content string) error {
	return r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Model(&store.Message{}).Where("id = ?", id).Update("content", content).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
}

// Count returns the total number of messages.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Model(&store.Message{}).Count(&count).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
