package bootstrap

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"

	"github.com/banterhq/banter/internal/slogx"
	"github.com/banterhq/banter/internal/store"
)

const secretHeader = "X-Bootstrap-Secret"

// SeedFunc runs the configured seeders after a successful migration.
type SeedFunc func(ctx context.Context) error

type Handler struct {
	mux    *http.ServeMux
	secret string
	store  *store.Store
	seed   SeedFunc
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(secret string, st *store.Store, seed SeedFunc) *Handler {
	h := &Handler{
		mux:    http.NewServeMux(),
		secret: secret,
		store:  st,
		seed:   seed,
	}

	h.mux.HandleFunc("POST /", h.handleBootstrap)

	return h
}

var _ http.Handler = &Handler{}

// handleBootstrap migrates the schema and runs the seeders. The endpoint
// is idempotent and guarded by a shared secret compared in constant time:
// 500 while the secret is unconfigured, 401 on mismatch.
func (h *Handler) handleBootstrap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.secret == "" {
		slog.ErrorContext(ctx, "bootstrap secret not configured")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if !secretsEqual(r.Header.Get(secretHeader), h.secret) {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.store.Migrate(ctx); err != nil {
		slog.ErrorContext(ctx, "could not migrate schema", slogx.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if h.seed != nil {
		if err := h.seed(ctx); err != nil {
			slog.ErrorContext(ctx, "could not seed store", slogx.Error(errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		slog.ErrorContext(ctx, "could not write response", slogx.Error(errors.WithStack(err)))
	}
}

// secretsEqual hashes both values so the comparison is constant time
// regardless of length.
func secretsEqual(a, b string) bool {
	hashedA := sha256.Sum256([]byte(a))
	hashedB := sha256.Sum256([]byte(b))

	return subtle.ConstantTimeCompare(hashedA[:], hashedB[:]) == 1
}
