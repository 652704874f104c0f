package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iota-uz/billing-portal/internal/server"
	"github.com/iota-uz/billing-portal/modules"
	"github.com/iota-uz/billing-portal/modules/portal"
	"github.com/iota-uz/billing-portal/modules/portal/infrastructure/api"
	"github.com/iota-uz/billing-portal/modules/portal/presentation/controllers"
	"github.com/iota-uz/billing-portal/pkg/application"
	"github.com/iota-uz/billing-portal/pkg/configuration"
	"github.com/iota-uz/billing-portal/pkg/graphql"
	"github.com/iota-uz/billing-portal/pkg/logging"
	"github.com/iota-uz/billing-portal/pkg/metrics"
	"github.com/iota-uz/billing-portal/pkg/querycache"
	pkgserver "github.com/iota-uz/billing-portal/pkg/server"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	defer conf.Unload()
	logger := conf.Logger()

	if conf.OpenTelemetry.Enabled {
		tracingCleanup := logging.SetupTracing(
			context.Background(),
			conf.OpenTelemetry.ServiceName,
			conf.OpenTelemetry.TempoURL,
		)
		defer tracingCleanup()
		logger.Info("OpenTelemetry tracing enabled, exporting to Tempo at " + conf.OpenTelemetry.TempoURL)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache, closeCache := newQueryCache(ctx, conf, logger)
	defer closeCache()

	client := api.NewClient(api.ClientOptions{
		GraphQL:     graphql.NewClient(conf.API.URL, graphql.WithTimeout(conf.API.Timeout)),
		Cache:       cache,
		TokenHeader: conf.API.PortalTokenHeader,
	})

	app := application.New(&application.ApplicationOptions{
		Bundle:             application.LoadBundle(),
		Logger:             logger,
		SupportedLanguages: conf.SupportedLanguages,
	})
	if err := modules.Load(app, portal.NewModule(portal.ModuleOptions{
		Client: client,
		Portal: conf.Portal,
	})); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}

	app.RegisterControllers(
		controllers.NewStaticFilesController(app.HashFsAssets()),
		pkgserver.NewHealthController(Version),
	)
	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	serverInstance, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
	})
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}
	log.Printf("Listening on: %s\n", conf.Origin)
	if err := serverInstance.Start(ctx, conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func newQueryCache(ctx context.Context, conf *configuration.Configuration, logger *logrus.Logger) (*querycache.Cache, func()) {
	opts := querycache.Options{
		TTL:    conf.QueryCache.TTL,
		Prefix: conf.QueryCache.Prefix,
		Logger: logger,
	}
	if conf.QueryCache.Backend == "redis" {
		connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		store, err := querycache.NewRedisStore(connectCtx, conf.RedisURL)
		if err == nil {
			return querycache.New(store, opts), func() {
				if err := store.Close(); err != nil {
					logger.WithError(err).Warn("failed to close query cache redis client")
				}
			}
		}
		logger.WithError(err).Warn("Failed to connect query cache to Redis, falling back to memory")
	}
	store := querycache.NewMemoryStore(conf.QueryCache.Size, conf.QueryCache.TTL)
	return querycache.New(store, opts), func() {}
}
