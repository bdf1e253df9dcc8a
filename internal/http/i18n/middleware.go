package i18n

import (
	"embed"
	"log/slog"
	"net/http"

	"github.com/invopop/ctxi18n"
	"github.com/pkg/errors"

	"github.com/banterhq/banter/internal/slogx"
)

//go:embed locales/*.yml
var locales embed.FS

func init() {
	if err := ctxi18n.Load(locales); err != nil {
		panic(errors.Wrap(err, "could not load translations"))
	}
}

func Middleware(defaultLang string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := defaultLang

			ctx := r.Context()

			if acceptLanguage := r.Header.Get("Accept-Language"); acceptLanguage != "" {
				lang = acceptLanguage
			}

			localized, err := ctxi18n.WithLocale(ctx, lang)
			if err != nil {
				slog.DebugContext(ctx, "could not set locale, falling back to default", slogx.Error(err))

				localized, err = ctxi18n.WithLocale(ctx, defaultLang)
				if err != nil {
					slog.WarnContext(ctx, "could not set default locale", slogx.Error(err))
					localized = ctx
				}
			}
			ctx = localized

			next.ServeHTTP(w, r.WithContext(ctx))
		})

		return http.HandlerFunc(fn)
	}
}
