package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/banterhq/banter/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open database: %v", err)
	}

	return store.New(db)
}

func TestBootstrapUnconfiguredSecret(t *testing.T) {
	handler := NewHandler("", newTestStore(t), nil)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(secretHeader, "whatever")
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if res.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, expected %d", res.Code, http.StatusInternalServerError)
	}
}

func TestBootstrapSecretMismatch(t *testing.T) {
	handler := NewHandler("topsecret", newTestStore(t), nil)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(secretHeader, "wrong")
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, expected %d", res.Code, http.StatusUnauthorized)
	}
}

func TestBootstrapMissingSecretHeader(t *testing.T) {
	handler := NewHandler("topsecret", newTestStore(t), nil)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, expected %d", res.Code, http.StatusUnauthorized)
	}
}

func TestBootstrapMigratesAndSeeds(t *testing.T) {
	st := newTestStore(t)

	seeded := false
	handler := NewHandler("topsecret", st, func(ctx context.Context) error {
		seeded = true
		return nil
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(secretHeader, "topsecret")
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("status = %d, expected %d", res.Code, http.StatusOK)
	}

	if !seeded {
		t.Error("seeders did not run")
	}

	var body map[string]string
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}

	if body["status"] != "ok" {
		t.Errorf(`body status = %q, expected "ok"`, body["status"])
	}

	if err := st.Ping(context.Background()); err != nil {
		t.Errorf("store not reachable after bootstrap: %v", err)
	}
}

func TestBootstrapIsIdempotent(t *testing.T) {
	handler := NewHandler("topsecret", newTestStore(t), nil)

	for range 2 {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(secretHeader, "topsecret")
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)

		if res.Code != http.StatusOK {
			t.Fatalf("status = %d, expected %d", res.Code, http.StatusOK)
		}
	}
}
