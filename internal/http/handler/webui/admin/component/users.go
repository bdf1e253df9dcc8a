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

type UserVModel struct {
	ID         uint
	Username   string
	ExternalID string
	CreatedAt  time.Time
}

type UserListPageVModel struct {
	Navbar commonComp.NavbarVModel
	Users  []UserVModel
}

func UserListPage(vmodel UserListPageVModel) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>%s</h1><table><thead><tr><th>%s</th><th>%s</th><th>%s</th><th>%s</th></tr></thead><tbody>`,
			templ.EscapeString(i18n.T(ctx, "admin.users.title")),
			templ.EscapeString(i18n.T(ctx, "admin.users.id")),
			templ.EscapeString(i18n.T(ctx, "admin.users.username")),
			templ.EscapeString(i18n.T(ctx, "admin.users.external_id")),
			templ.EscapeString(i18n.T(ctx, "admin.users.created_at")),
		)
		if err != nil {
			return err
		}

		for _, user := range vmodel.Users {
			_, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td><code>%s</code></td><td>%s</td></tr>`,
				templ.EscapeString(commonComp.FormatID(user.ID)),
				templ.EscapeString(user.Username),
				templ.EscapeString(user.ExternalID),
				templ.EscapeString(commonComp.FormatTime(user.CreatedAt)),
			)
			if err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, "</tbody></table>")

		return err
	})

	return commonComp.Layout("Users", vmodel.Navbar, body)
}
