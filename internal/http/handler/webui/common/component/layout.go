package component

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/invopop/ctxi18n/i18n"
)

type NavbarVModel struct {
	Username  string
	LoggedIn  bool
	ShowAdmin bool
}

// Layout wraps a page body in the shared document shell and navbar.
func Layout(title string, navbar NavbarVModel, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/><title>%s</title><link rel="stylesheet" href="%s"/></head><body>`,
			templ.EscapeString(title),
			BaseURL(ctx, WithPath("/assets/style.css")),
		)
		if err != nil {
			return err
		}

		if err := Navbar(navbar).Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, "<main>"); err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		_, err = io.WriteString(w, "</main></body></html>")

		return err
	})
}

func Navbar(vmodel NavbarVModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<header class="navbar"><strong>%s</strong><nav>`, templ.EscapeString(i18n.T(ctx, "common.app_name"))); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<a href="%s">%s</a>`, BaseURL(ctx, WithPath("/")), templ.EscapeString(i18n.T(ctx, "common.nav.chat"))); err != nil {
			return err
		}

		if vmodel.ShowAdmin {
			if _, err := fmt.Fprintf(w, `<a href="%s">%s</a>`, BaseURL(ctx, WithPath("/admin/summary")), templ.EscapeString(i18n.T(ctx, "common.nav.admin"))); err != nil {
				return err
			}
		}

		if vmodel.LoggedIn {
			if _, err := fmt.Fprintf(w, `<span> %s </span><a href="%s">%s</a>`,
				templ.EscapeString(vmodel.Username),
				BaseURL(ctx, WithPath("/auth/logout")),
				templ.EscapeString(i18n.T(ctx, "common.nav.logout")),
			); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w, `<a href="%s">%s</a>`, BaseURL(ctx, WithPath("/auth/login")), templ.EscapeString(i18n.T(ctx, "common.nav.login"))); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</nav></header>")

		return err
	})
}
