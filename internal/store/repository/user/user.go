package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/banterhq/banter/internal/store"
)

// Provision guarantees a local user row for the given external identity
// and returns it. The upsert and the read-back run in one transaction, so
// concurrent first logins for the same identity converge on a single row;
// the last writer's username wins.
func (r *Repository) Provision(ctx context.Context, externalID uuid.UUID, username string) (*store.User, error) {
	var user store.User

	err := r.store.WithTx(ctx, func(ctx context.Context, db *gorm.DB) error {
		record := store.NewUser(externalID, username)

		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).Create(record).Error
		if err != nil {
			return errors.WithStack(err)
		}

		if err := db.Where("external_id = ?", externalID[:]).First(&user).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &user, nil
}

// GetByExternalID retrieves a user by its provider subject id.
func (r *Repository) GetByExternalID(ctx context.Context, externalID uuid.UUID) (*store.User, error) {
	var user store.User
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Where("external_id = ?", externalID[:]).First(&user).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves all users ordered by id, oldest first.
func (r *Repository) List(ctx context.Context) ([]*store.User, error) {
	var users []*store.User
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Order("id ASC").Find(&users).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Count returns the total number of users.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Model(&store.User{}).Count(&count).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
