package config

import "time"

type HTTP struct {
	BaseURL string  `env:"BASE_URL,expand" envDefault:"/"`
	Address string  `env:"ADDRESS,expand" envDefault:":3000"`
	Authn   Authn   `envPrefix:"AUTHN_"`
	Session Session `envPrefix:"SESSION_"`
}

type Authn struct {
	OIDC OIDCProvider `envPrefix:"OIDC_"`
}

type OIDCProvider struct {
	Key          string   `env:"KEY"`
	Secret       string   `env:"SECRET"`
	DiscoveryURL string   `env:"DISCOVERY_URL"`
	Scopes       []string `env:"SCOPES" envSeparator:"," envDefault:"openid,profile,email,roles"`
	Label        string   `env:"LABEL" envDefault:"OpenID Connect"`
	Icon         string   `env:"ICON" envDefault:"fa-openid"`
}

type Session struct {
	Keys   []string `env:"KEYS" envSeparator:","`
	Cookie Cookie   `envPrefix:"COOKIE_"`
}

type Cookie struct {
	Path     string        `env:"PATH" envDefault:"/"`
	HTTPOnly bool          `env:"HTTP_ONLY" envDefault:"true"`
	Secure   bool          `env:"SECURE" envDefault:"false"`
	MaxAge   time.Duration `env:"MAX_AGE" envDefault:"24h"`
}
