package url

import (
	"fmt"
	"net/url"
	"path/filepath"
)

type URL = url.URL

var Parse = url.Parse

type MutationFunc func(u *url.URL)

func Mutate(u *url.URL, funcs ...MutationFunc) *url.URL {
	cloned := clone(u)

	for _, fn := range funcs {
		fn(cloned)
	}

	return cloned
}

func WithPath(paths ...string) MutationFunc {
	return func(u *url.URL) {
		u.Path = filepath.Join(paths...)
	}
}

func WithPathf(format string, params ...any) MutationFunc {
	return func(u *url.URL) {
		u.Path = filepath.Join(fmt.Sprintf(format, params...))
	}
}

func WithValues(kv ...string) MutationFunc {
	if len(kv)%2 != 0 {
		panic(fmt.Errorf("expected pair number of key/values"))
	}

	return func(u *url.URL) {
		query := u.Query()

		for idx := 0; idx < len(kv); idx += 2 {
			query.Add(kv[idx], kv[idx+1])
		}

		u.RawQuery = query.Encode()
	}
}

func clone[T any](v *T) *T {
	copy := *v
	return &copy
}
