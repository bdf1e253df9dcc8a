package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/banterhq/banter/internal/http/handler/bootstrap"
	"github.com/banterhq/banter/internal/store"
)

func newBootstrapHandler(t *testing.T, secret string) http.Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open database: %v", err)
	}

	return bootstrap.NewHandler(secret, store.New(db), nil)
}

func TestMountExactPrefixReachesHandler(t *testing.T) {
	mux := http.NewServeMux()
	mount(mux, "/bootstrap", newBootstrapHandler(t, "topsecret"))

	req := httptest.NewRequest(http.MethodPost, "/bootstrap", nil)
	req.Header.Set("X-Bootstrap-Secret", "topsecret")
	res := httptest.NewRecorder()

	mux.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Errorf("POST /bootstrap status = %d, expected %d", res.Code, http.StatusOK)
	}
}

func TestMountExactPrefixRejectsBadSecret(t *testing.T) {
	mux := http.NewServeMux()
	mount(mux, "/bootstrap", newBootstrapHandler(t, "topsecret"))

	req := httptest.NewRequest(http.MethodPost, "/bootstrap", nil)
	req.Header.Set("X-Bootstrap-Secret", "wrong")
	res := httptest.NewRecorder()

	mux.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Errorf("POST /bootstrap status = %d, expected %d", res.Code, http.StatusUnauthorized)
	}
}

func TestMountSubtreePrefixStripsPath(t *testing.T) {
	mux := http.NewServeMux()

	var seenPath string
	mount(mux, "/admin/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenPath = r.URL.Path
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	res := httptest.NewRecorder()

	mux.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("GET /admin/users status = %d, expected %d", res.Code, http.StatusOK)
	}

	if seenPath != "/users" {
		t.Errorf("mounted handler saw path %q, expected %q", seenPath, "/users")
	}
}

func TestMountRoot(t *testing.T) {
	mux := http.NewServeMux()

	var seenPath string
	mount(mux, "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenPath = r.URL.Path
	}))

	req := httptest.NewRequest(http.MethodGet, "/messages", nil)
	res := httptest.NewRecorder()

	mux.ServeHTTP(res, req)

	if seenPath != "/messages" {
		t.Errorf("root handler saw path %q, expected %q", seenPath, "/messages")
	}
}
