package chat

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/pkg/errors"

	"github.com/banterhq/banter/internal/http/authz"
	httpCtx "github.com/banterhq/banter/internal/http/context"
	"github.com/banterhq/banter/internal/http/handler/webui/chat/component"
	"github.com/banterhq/banter/internal/http/handler/webui/common"
	commonComp "github.com/banterhq/banter/internal/http/handler/webui/common/component"
)

func (h *Handler) getChatPage(w http.ResponseWriter, r *http.Request) {
	h.renderChatPage(w, r, "", http.StatusOK)
}

// renderChatPage re-fetches the message stream and renders it. banner
// carries a client-correctable mutation error, empty on the happy path.
func (h *Handler) renderChatPage(w http.ResponseWriter, r *http.Request, banner string, status int) {
	ctx := r.Context()
	sess := httpCtx.Session(ctx)

	messages, err := h.messages.ListAll(ctx)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	vmodel := component.ChatPageVModel{
		Navbar: commonComp.NavbarVModel{
			Username:  sess.Username,
			LoggedIn:  true,
			ShowAdmin: h.perms.Has(sess.Roles, authz.ActionSummaryView),
		},
		CanPost: h.perms.Has(sess.Roles, authz.ActionCreate),
		Error:   banner,
	}

	canEdit := h.perms.Has(sess.Roles, authz.ActionEdit)
	canDelete := h.perms.Has(sess.Roles, authz.ActionDelete)

	for _, msg := range messages {
		vmodel.Entries = append(vmodel.Entries, component.MessageVModel{
			Message:   msg,
			CanEdit:   canEdit && msg.AuthorID == sess.UserID,
			CanDelete: canDelete && msg.AuthorID == sess.UserID,
		})
	}

	chatPage := component.ChatPage(vmodel)

	templ.Handler(chatPage, templ.WithStatus(status)).ServeHTTP(w, r)
}
