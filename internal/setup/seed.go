package setup

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/banterhq/banter/internal/config"
	"github.com/banterhq/banter/internal/store"
	"github.com/banterhq/banter/internal/store/repository/seed"
)

// RunSeeders populates demo users and messages. Each seeder executes at
// most once, tracked in the seeds table; provisioning demo users reuses
// the same upsert the login path relies on.
func RunSeeders(ctx context.Context, conf *config.Config) error {
	st, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return errors.WithStack(err)
	}

	repo := seed.NewRepository(st)

	seeders := make([]*seed.Seeder, 0)

	if len(conf.Seed.DemoUsers) > 0 {
		demoUsers := conf.Seed.DemoUsers
		demoMessages := conf.Seed.DemoMessages

		seeders = append(seeders, seed.New(
			"demo-chat",
			func(ctx context.Context, db *gorm.DB) error {
				users := make([]*store.User, 0, len(demoUsers))

				for _, name := range demoUsers {
					externalID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))
					user := store.NewUser(externalID, name)

					if err := db.Create(user).Error; err != nil {
						return errors.WithStack(err)
					}

					users = append(users, user)
				}

				for idx, content := range demoMessages {
					message := &store.Message{
						Content:  content,
						AuthorID: users[idx%len(users)].ID,
					}

					if err := db.Create(message).Error; err != nil {
						return errors.WithStack(err)
					}
				}

				return nil
			},
		))
	}

	if err := repo.Seed(ctx, false, seeders...); err != nil {
		return errors.Wrap(err, "could not execute store seeding")
	}

	return nil
}

func SeedFromConfig(ctx context.Context, conf *config.Config) error {
	if !conf.Seed.Enabled {
		return nil
	}

	return RunSeeders(ctx, conf)
}
