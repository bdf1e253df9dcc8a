package component

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
	"github.com/invopop/ctxi18n/i18n"

	commonComp "github.com/banterhq/banter/internal/http/handler/webui/common/component"
)

type SummaryPageVModel struct {
	Navbar                commonComp.NavbarVModel
	UserCount             int64
	MessageCount          int64
	HostUptime            time.Duration
	HostMemoryUsedPercent float64
}

func SummaryPage(vmodel SummaryPageVModel) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>%s</h1><table><tbody><tr><th>%s</th><td>%d</td></tr><tr><th>%s</th><td>%d</td></tr>`,
			templ.EscapeString(i18n.T(ctx, "admin.summary.title")),
			templ.EscapeString(i18n.T(ctx, "admin.summary.users")),
			vmodel.UserCount,
			templ.EscapeString(i18n.T(ctx, "admin.summary.messages")),
			vmodel.MessageCount,
		)
		if err != nil {
			return err
		}

		if vmodel.HostUptime > 0 {
			_, err := fmt.Fprintf(w, `<tr><th>%s</th><td>%s</td></tr>`,
				templ.EscapeString(i18n.T(ctx, "admin.summary.host_uptime")),
				templ.EscapeString(vmodel.HostUptime.Round(time.Minute).String()),
			)
			if err != nil {
				return err
			}
		}

		if vmodel.HostMemoryUsedPercent > 0 {
			_, err := fmt.Fprintf(w, `<tr><th>%s</th><td>%.1f%%</td></tr>`,
				templ.EscapeString(i18n.T(ctx, "admin.summary.host_memory")),
				vmodel.HostMemoryUsedPercent,
			)
			if err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, "</tbody></table>")

		return err
	})

	return commonComp.Layout("Summary", vmodel.Navbar, body)
}
