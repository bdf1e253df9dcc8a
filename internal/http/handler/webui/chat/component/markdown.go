package component

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
)

var markdown = goldmark.New()

// Content renders a message body as markdown. Raw HTML inside the
// content stays escaped by the renderer.
func Content(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(content), &buf); err != nil {
			_, werr := io.WriteString(w, templ.EscapeString(content))
			if werr != nil {
				return werr
			}
			return nil
		}

		_, err := w.Write(buf.Bytes())

		return err
	})
}
