package setup

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/banterhq/banter/internal/chat"
	"github.com/banterhq/banter/internal/config"
	"github.com/banterhq/banter/internal/http"
	"github.com/banterhq/banter/internal/http/authz"
	"github.com/banterhq/banter/internal/http/handler/bootstrap"
	"github.com/banterhq/banter/internal/http/handler/metrics"
	"github.com/banterhq/banter/internal/http/handler/webui"
	"github.com/banterhq/banter/internal/http/handler/webui/common"
	"github.com/banterhq/banter/internal/http/i18n"
	"github.com/banterhq/banter/internal/http/pprof"
	appMetrics "github.com/banterhq/banter/internal/metrics"
	messageRepo "github.com/banterhq/banter/internal/store/repository/message"
	userRepo "github.com/banterhq/banter/internal/store/repository/user"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	authnHandler, err := getAuthnHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure authn handler from config")
	}

	authnMiddleware := authnHandler.Middleware()
	i18nMiddleware := i18n.Middleware("en")

	st, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure store from config")
	}

	// The permission table is built once here and injected everywhere.
	perms := authz.DefaultPermissions()

	users := userRepo.NewRepository(st)
	messages := messageRepo.NewRepository(st)

	guard := chat.NewGuard(perms, messages)
	guard.Subscribe(appMetrics.ObserveMutations)
	guard.Subscribe(func(evt chat.Event) {
		slog.DebugContext(ctx, "message stream invalidated", slog.String("event_id", evt.ID), slog.String("action", evt.Action))
	})

	assets := common.NewHandler()

	bootstrapHandler := bootstrap.NewHandler(conf.Storage.Bootstrap.Secret, st, func(ctx context.Context) error {
		return RunSeeders(ctx, conf)
	})

	webuiHandler := webui.NewHandler(guard, users, messages, perms, slog.Default())

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithMount("/assets/", assets),
		http.WithMount("/auth/", i18nMiddleware(authnHandler)),
		http.WithMount("/bootstrap", bootstrapHandler),
		http.WithMount("/metrics/", authnMiddleware(metrics.NewHandler())),
		http.WithMount("/pprof/", authnMiddleware(pprof.NewHandler())),
		http.WithMount("/", i18nMiddleware(authnMiddleware(webuiHandler))),
	}

	server := http.NewServer(options...)

	return server, nil
}
