package chat

import (
	"log/slog"
	"net/http"

	chatGuard "github.com/banterhq/banter/internal/chat"
	"github.com/banterhq/banter/internal/http/authz"
	messageRepo "github.com/banterhq/banter/internal/store/repository/message"
)

type Handler struct {
	mux      *http.ServeMux
	guard    *chatGuard.Guard
	messages *messageRepo.Repository
	perms    authz.Permissions
	logger   *slog.Logger
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(guard *chatGuard.Guard, messages *messageRepo.Repository, perms authz.Permissions, logger *slog.Logger) *Handler {
	h := &Handler{
		mux:      http.NewServeMux(),
		guard:    guard,
		messages: messages,
		perms:    perms,
		logger:   logger.With("component", "chat-handler"),
	}

	assertView := authz.Middleware(http.HandlerFunc(h.getForbiddenPage), authz.Can(perms, authz.ActionView))

	h.mux.Handle("GET /{$}", assertView(http.HandlerFunc(h.getChatPage)))
	h.mux.Handle("POST /messages", assertView(http.HandlerFunc(h.handlePostMessage)))
	h.mux.Handle("POST /messages/{messageID}/edit", assertView(http.HandlerFunc(h.handleEditMessage)))
	h.mux.Handle("POST /messages/{messageID}/delete", assertView(http.HandlerFunc(h.handleDeleteMessage)))

	return h
}

var _ http.Handler = &Handler{}
