package component

import (
	"context"
	"strconv"
	"time"

	"github.com/a-h/templ"

	httpCtx "github.com/banterhq/banter/internal/http/context"
	httpURL "github.com/banterhq/banter/internal/http/url"
)

var (
	WithPath   = httpURL.WithPath
	WithPathf  = httpURL.WithPathf
	WithValues = httpURL.WithValues
)

var Session = httpCtx.Session

func BaseURL(ctx context.Context, funcs ...httpURL.MutationFunc) templ.SafeURL {
	baseURL := httpCtx.BaseURL(ctx)
	mutated := httpURL.Mutate(baseURL, funcs...)
	return templ.SafeURL(mutated.String())
}

func CurrentURL(ctx context.Context, funcs ...httpURL.MutationFunc) templ.SafeURL {
	currentURL := clone(httpCtx.CurrentURL(ctx))
	mutated := httpURL.Mutate(currentURL, funcs...)
	return templ.SafeURL(mutated.String())
}

func FormatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// FormatTime renders timestamps the way the chat stream displays them,
// e.g. "02 Jan 2006 15:04".
func FormatTime(t time.Time) string {
	return t.Format("02 Jan 2006 15:04")
}

func clone[T any](v *T) *T {
	copy := *v
	return &copy
}
