package webui

import (
	"log/slog"
	"net/http"
	"strings"

	chatGuard "github.com/banterhq/banter/internal/chat"
	"github.com/banterhq/banter/internal/http/authz"
	adminModule "github.com/banterhq/banter/internal/http/handler/webui/admin"
	chatModule "github.com/banterhq/banter/internal/http/handler/webui/chat"
	messageRepo "github.com/banterhq/banter/internal/store/repository/message"
	userRepo "github.com/banterhq/banter/internal/store/repository/user"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(guard *chatGuard.Guard, users *userRepo.Repository, messages *messageRepo.Repository, perms authz.Permissions, logger *slog.Logger) *Handler {
	mux := http.NewServeMux()

	h := &Handler{
		mux: mux,
	}

	mount(mux, "/", chatModule.NewHandler(guard, messages, perms, logger))
	mount(mux, "/admin/", adminModule.NewHandler(users, messages, perms, logger))

	return h
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

var _ http.Handler = &Handler{}
