package setup

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/openidConnect"
	"github.com/pkg/errors"

	"github.com/banterhq/banter/internal/config"
	"github.com/banterhq/banter/internal/http/handler/authn"
	userRepo "github.com/banterhq/banter/internal/store/repository/user"
)

var getAuthnHandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*authn.Handler, error) {
	keyPairs := make([][]byte, 0)
	if len(conf.HTTP.Session.Keys) == 0 {
		key, err := getRandomBytes(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate cookie signing key")
		}

		keyPairs = append(keyPairs, key)
	} else {
		for _, k := range conf.HTTP.Session.Keys {
			keyPairs = append(keyPairs, []byte(k))
		}
	}

	sessionStore := sessions.NewCookieStore(keyPairs...)

	sessionStore.MaxAge(int(conf.HTTP.Session.Cookie.MaxAge.Seconds()))
	sessionStore.Options.Path = conf.HTTP.Session.Cookie.Path
	sessionStore.Options.HttpOnly = conf.HTTP.Session.Cookie.HTTPOnly
	sessionStore.Options.Secure = conf.HTTP.Session.Cookie.Secure
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	oidcConf := conf.HTTP.Authn.OIDC

	if oidcConf.Key == "" || oidcConf.Secret == "" || oidcConf.DiscoveryURL == "" {
		return nil, errors.New("no oidc provider configured")
	}

	oidcProvider, err := openidConnect.New(
		oidcConf.Key,
		oidcConf.Secret,
		fmt.Sprintf("%s/auth/providers/openid-connect/callback", conf.HTTP.BaseURL),
		oidcConf.DiscoveryURL,
		oidcConf.Scopes...,
	)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure oidc provider")
	}

	goth.UseProviders(oidcProvider)
	gothic.Store = sessionStore

	st, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	handler := authn.NewHandler(
		sessionStore,
		userRepo.NewRepository(st),
		authn.WithClientID(oidcConf.Key),
		authn.WithProviders(authn.Provider{
			ID:    oidcProvider.Name(),
			Label: oidcConf.Label,
			Icon:  oidcConf.Icon,
		}),
	)

	return handler, nil
})

func getRandomBytes(n int) ([]byte, error) {
	data := make([]byte, n)

	read, err := rand.Read(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if read != n {
		return nil, errors.Errorf("could not read %d bytes", n)
	}

	return data, nil
}
