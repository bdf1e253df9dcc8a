package chat

import (
	"net/http"

	chatGuard "github.com/banterhq/banter/internal/chat"
	httpCtx "github.com/banterhq/banter/internal/http/context"
)

// The guard's client-visible error strings mapped onto HTTP statuses.
func statusFor(result chatGuard.Result) int {
	switch result.Error {
	case chatGuard.ResultUnauthorized:
		return http.StatusUnauthorized
	case chatGuard.ResultMissingPermissions:
		return http.StatusForbidden
	case chatGuard.ResultInvalidBody, chatGuard.ResultDataFormatIssue:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) handlePostMessage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderChatPage(w, r, chatGuard.ResultInvalidBody, http.StatusBadRequest)
		return
	}

	sess := httpCtx.Session(r.Context())

	result := h.guard.PostMessage(r.Context(), sess, r.PostFormValue("text"))
	if !result.OK() {
		h.renderChatPage(w, r, result.Error, statusFor(result))
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleEditMessage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderChatPage(w, r, chatGuard.ResultDataFormatIssue, http.StatusBadRequest)
		return
	}

	sess := httpCtx.Session(r.Context())

	result := h.guard.EditMessage(r.Context(), sess, r.PathValue("messageID"), r.PostFormValue("text"))
	if !result.OK() {
		h.renderChatPage(w, r, result.Error, statusFor(result))
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	sess := httpCtx.Session(r.Context())

	result := h.guard.DeleteMessage(r.Context(), sess, r.PathValue("messageID"))
	if !result.OK() {
		h.renderChatPage(w, r, result.Error, statusFor(result))
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
