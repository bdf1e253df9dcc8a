package admin

import (
	"net/http"

	"github.com/pkg/errors"

	httpCtx "github.com/banterhq/banter/internal/http/context"
	"github.com/banterhq/banter/internal/http/handler/webui/admin/component"
	"github.com/banterhq/banter/internal/http/handler/webui/common"
	commonComp "github.com/banterhq/banter/internal/http/handler/webui/common/component"
)

func (h *Handler) getUserListPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := httpCtx.Session(ctx)

	users, err := h.users.List(ctx)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	vmodel := component.UserListPageVModel{
		Navbar: commonComp.NavbarVModel{
			Username:  sess.Username,
			LoggedIn:  true,
			ShowAdmin: true,
		},
	}

	for _, user := range users {
		vmodel.Users = append(vmodel.Users, component.UserVModel{
			ID:         user.ID,
			Username:   user.Name,
			ExternalID: user.ExternalUUID().String(),
			CreatedAt:  user.CreatedAt,
		})
	}

	common.RenderPage(w, r, component.UserListPage(vmodel))
}
