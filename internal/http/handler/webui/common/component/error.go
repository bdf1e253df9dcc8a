package component

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/invopop/ctxi18n/i18n"
)

type ErrorPageVModel struct {
	Message string
}

func ErrorPage(vmodel ErrorPageVModel) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>%s</h1><p class="error-banner">%s</p><p><a href="%s">%s</a></p>`,
			templ.EscapeString(i18n.T(ctx, "common.error.title")),
			templ.EscapeString(vmodel.Message),
			BaseURL(ctx, WithPath("/")),
			templ.EscapeString(i18n.T(ctx, "common.error.back")),
		)
		return err
	})

	return Layout("Error", NavbarVModel{}, body)
}
