package main

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/pharmanet/pharmacy-console/internal/config"
	"github.com/pharmanet/pharmacy-console/internal/gateway"
	"github.com/pharmanet/pharmacy-console/internal/session"
	"github.com/pharmanet/pharmacy-console/pkg/cmd"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	pkgtime "github.com/pharmanet/pharmacy-console/pkg/time"
)

func main() {
	ctx := context.Background()
	logger := cmd.InitLogger()
	defer cmd.HandleAppPanic(ctx, logger)

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	stores, closeStores := newStoreProvider(cfg)
	defer closeStores()

	container := gateway.NewContainer(cfg, stores, pkgtime.NewAdjustableClock(), logger)

	server := pkghttp.NewServer(
		cfg.Gateway.Address,
		pkghttp.WithHealthCheck(nil),
		pkghttp.WithCORSHandler(),
		pkghttp.WithLogging(logger),
		container.Sessions.WithSessionResolution(),
	)
	container.RegisterHTTPHandlers(server)

	logger.WithField("address", cfg.Gateway.Address).Info(ctx, "starting console gateway")
	cmd.MustRun(ctx, logger,
		cmd.TermSignalAwaiter,
		server.Listener,
	)
}

func newStoreProvider(cfg *config.Config) (session.StoreProvider, func()) {
	if cfg.Gateway.RedisAddress == "" {
		return session.NewMemoryStoreProvider(), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Gateway.RedisAddress,
		Password: cfg.Gateway.RedisPassword,
		DB:       cfg.Gateway.RedisDB,
	})
	return session.NewRedisStoreProvider(client, cfg.Gateway.SessionTTL), func() { _ = client.Close() }
}
