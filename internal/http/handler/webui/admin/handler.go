package admin

import (
	"log/slog"
	"net/http"

	"github.com/banterhq/banter/internal/http/authz"
	messageRepo "github.com/banterhq/banter/internal/store/repository/message"
	userRepo "github.com/banterhq/banter/internal/store/repository/user"
)

type Handler struct {
	mux      *http.ServeMux
	users    *userRepo.Repository
	messages *messageRepo.Repository
	perms    authz.Permissions
	logger   *slog.Logger
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(users *userRepo.Repository, messages *messageRepo.Repository, perms authz.Permissions, logger *slog.Logger) *Handler {
	h := &Handler{
		mux:      http.NewServeMux(),
		users:    users,
		messages: messages,
		perms:    perms,
		logger:   logger.With("component", "admin-handler"),
	}

	assertSummary := authz.Middleware(http.HandlerFunc(h.getForbiddenPage), authz.Can(perms, authz.ActionSummaryView))

	h.mux.Handle("GET /{$}", assertSummary(http.HandlerFunc(redirect("/admin/summary"))))
	h.mux.Handle("GET /summary", assertSummary(http.HandlerFunc(h.getSummaryPage)))
	h.mux.Handle("GET /users", assertSummary(http.HandlerFunc(h.getUserListPage)))

	return h
}

var _ http.Handler = &Handler{}

func redirect(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, path, http.StatusTemporaryRedirect)
	}
}
