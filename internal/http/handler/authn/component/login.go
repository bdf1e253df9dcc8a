package component

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/invopop/ctxi18n/i18n"

	commonComp "github.com/banterhq/banter/internal/http/handler/webui/common/component"
)

type Provider struct {
	ID    string
	Label string
	Icon  string
}

type LoginPageVModel struct {
	Providers []Provider
}

func LoginPage(vmodel LoginPageVModel) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1><ul class="providers">`, templ.EscapeString(i18n.T(ctx, "authn.login.title"))); err != nil {
			return err
		}

		for _, provider := range vmodel.Providers {
			_, err := fmt.Fprintf(w, `<li><a href="%s"><i class="%s"></i> %s</a></li>`,
				commonComp.BaseURL(ctx, commonComp.WithPathf("/auth/providers/%s", provider.ID)),
				templ.EscapeString(provider.Icon),
				templ.EscapeString(provider.Label),
			)
			if err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</ul>")

		return err
	})

	return commonComp.Layout("Login", commonComp.NavbarVModel{}, body)
}
