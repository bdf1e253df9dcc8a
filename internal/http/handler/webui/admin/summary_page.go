package admin

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	httpCtx "github.com/banterhq/banter/internal/http/context"
	"github.com/banterhq/banter/internal/http/handler/webui/admin/component"
	"github.com/banterhq/banter/internal/http/handler/webui/common"
	commonComp "github.com/banterhq/banter/internal/http/handler/webui/common/component"
	"github.com/banterhq/banter/internal/slogx"
)

func (h *Handler) getSummaryPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := httpCtx.Session(ctx)

	userCount, err := h.users.Count(ctx)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	messageCount, err := h.messages.Count(ctx)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	vmodel := component.SummaryPageVModel{
		Navbar: commonComp.NavbarVModel{
			Username:  sess.Username,
			LoggedIn:  true,
			ShowAdmin: true,
		},
		UserCount:    userCount,
		MessageCount: messageCount,
	}

	// Host stats are best effort; the summary renders without them.
	if uptime, err := host.UptimeWithContext(ctx); err == nil {
		vmodel.HostUptime = time.Duration(uptime) * time.Second
	} else {
		slog.DebugContext(ctx, "could not read host uptime", slogx.Error(err))
	}

	if vmem, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		vmodel.HostMemoryUsedPercent = vmem.UsedPercent
	} else {
		slog.DebugContext(ctx, "could not read host memory", slogx.Error(err))
	}

	common.RenderPage(w, r, component.SummaryPage(vmodel))
}
