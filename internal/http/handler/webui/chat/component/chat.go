package component

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/invopop/ctxi18n/i18n"

	commonComp "github.com/banterhq/banter/internal/http/handler/webui/common/component"
	"github.com/banterhq/banter/internal/store"
)

type MessageVModel struct {
	Message   *store.MessageWithAuthor
	CanEdit   bool
	CanDelete bool
}

type ChatPageVModel struct {
	Navbar  commonComp.NavbarVModel
	Entries []MessageVModel
	CanPost bool
	Error   string
}

func ChatPage(vmodel ChatPageVModel) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<h1>%s</h1>", templ.EscapeString(i18n.T(ctx, "chat.title"))); err != nil {
			return err
		}

		if vmodel.Error != "" {
			if _, err := fmt.Fprintf(w, `<p class="error-banner">%s</p>`, templ.EscapeString(vmodel.Error)); err != nil {
				return err
			}
		}

		if len(vmodel.Entries) == 0 {
			if _, err := fmt.Fprintf(w, "<p>%s</p>", templ.EscapeString(i18n.T(ctx, "chat.empty"))); err != nil {
				return err
			}
		}

		for _, entry := range vmodel.Entries {
			if err := Message(entry).Render(ctx, w); err != nil {
				return err
			}
		}

		if vmodel.CanPost {
			if err := MessageForm().Render(ctx, w); err != nil {
				return err
			}
		}

		return nil
	})

	return commonComp.Layout("Banter", vmodel.Navbar, body)
}

func Message(vmodel MessageVModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		msg := vmodel.Message

		edited := ""
		if msg.UpdatedAt.After(msg.CreatedAt) {
			edited = fmt.Sprintf(" (%s)", templ.EscapeString(i18n.T(ctx, "chat.edited")))
		}

		_, err := fmt.Fprintf(w, `<article class="message"><div class="meta"><strong>%s</strong> %s%s</div>`,
			templ.EscapeString(msg.AuthorName),
			templ.EscapeString(commonComp.FormatTime(msg.CreatedAt)),
			edited,
		)
		if err != nil {
			return err
		}

		if err := Content(msg.Content).Render(ctx, w); err != nil {
			return err
		}

		if vmodel.CanEdit || vmodel.CanDelete {
			if _, err := io.WriteString(w, `<div class="controls">`); err != nil {
				return err
			}

			if vmodel.CanEdit {
				_, err := fmt.Fprintf(w, `<details><summary>%s</summary><form method="post" action="%s"><textarea name="text" maxlength="1000" required>%s</textarea><button type="submit">%s</button></form></details>`,
					templ.EscapeString(i18n.T(ctx, "chat.edit")),
					commonComp.BaseURL(ctx, commonComp.WithPathf("/messages/%d/edit", msg.ID)),
					templ.EscapeString(msg.Content),
					templ.EscapeString(i18n.T(ctx, "chat.save")),
				)
				if err != nil {
					return err
				}
			}

			if vmodel.CanDelete {
				_, err := fmt.Fprintf(w, `<form method="post" action="%s"><button type="submit" class="danger">%s</button></form>`,
					commonComp.BaseURL(ctx, commonComp.WithPathf("/messages/%d/delete", msg.ID)),
					templ.EscapeString(i18n.T(ctx, "chat.delete")),
				)
				if err != nil {
					return err
				}
			}

			if _, err := io.WriteString(w, `</div>`); err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, `</article>`)

		return err
	})
}

func MessageForm() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<form class="message-form" method="post" action="%s"><textarea name="text" maxlength="1000" placeholder="%s" required></textarea><button type="submit">%s</button></form>`,
			commonComp.BaseURL(ctx, commonComp.WithPath("/messages")),
			templ.EscapeString(i18n.T(ctx, "chat.placeholder")),
			templ.EscapeString(i18n.T(ctx, "chat.post")),
		)
		return err
	})
}
