package admin

import (
	"net/http"

	"github.com/invopop/ctxi18n/i18n"

	"github.com/banterhq/banter/internal/http/handler/webui/common"
)

func (h *Handler) getForbiddenPage(w http.ResponseWriter, r *http.Request) {
	common.HandleError(w, r, common.NewError("forbidden", i18n.T(r.Context(), "admin.forbidden"), http.StatusForbidden))
}
