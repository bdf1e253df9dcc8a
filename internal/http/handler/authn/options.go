package authn

import "github.com/banterhq/banter/internal/http/handler/authn/component"

type Provider = component.Provider

type Options struct {
	Providers   []component.Provider
	SessionName string
	ClientID    string
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Providers:   make([]Provider, 0),
		SessionName: "banter_auth",
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithProviders(providers ...Provider) OptionFunc {
	return func(opts *Options) {
		opts.Providers = providers
	}
}

func WithSessionName(sessionName string) OptionFunc {
	return func(opts *Options) {
		opts.SessionName = sessionName
	}
}

// WithClientID sets the provider client id used to pick the client-scoped
// role claims out of the access token.
func WithClientID(clientID string) OptionFunc {
	return func(opts *Options) {
		opts.ClientID = clientID
	}
}
