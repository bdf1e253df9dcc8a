package user

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/banterhq/banter/internal/store"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open database: %v", err)
	}

	return NewRepository(store.New(db))
}

func TestProvisionIsIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	externalID := uuid.MustParse("7a6bfd52-9965-4b5b-9e1f-004195a4c01e")

	first, err := repo.Provision(ctx, externalID, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := repo.Provision(ctx, externalID, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("provisioning twice returned ids %d and %d", first.ID, second.ID)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if count != 1 {
		t.Errorf("user count = %d, expected 1", count)
	}
}

func TestProvisionUpdatesUsername(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	externalID := uuid.MustParse("7a6bfd52-9965-4b5b-9e1f-004195a4c01e")

	if _, err := repo.Provision(ctx, externalID, "alice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := repo.Provision(ctx, externalID, "alice-renamed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Name != "alice-renamed" {
		t.Errorf("name = %q, expected the latest provisioned name", user.Name)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if count != 1 {
		t.Errorf("user count = %d, expected 1", count)
	}
}

func TestProvisionPreservesExternalID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	externalID := uuid.MustParse("11e6bfd5-2996-4b5b-9e1f-004195a4c01e")

	if _, err := repo.Provision(ctx, externalID, "bob"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := repo.GetByExternalID(ctx, externalID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.ExternalUUID() != externalID {
		t.Errorf("external id = %s, expected %s", user.ExternalUUID(), externalID)
	}
}

func TestListOrdersByID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	names := []string{"alice", "bob", "carol"}
	for _, name := range names {
		if _, err := repo.Provision(ctx, uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)), name); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(users) != len(names) {
		t.Fatalf("listed %d users, expected %d", len(users), len(names))
	}

	for i, user := range users {
		if user.Name != names[i] {
			t.Errorf("users[%d].Name = %q, expected %q", i, user.Name, names[i])
		}
	}
}
