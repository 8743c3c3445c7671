// @title FX Rate Service API
// @version 1.0
// @description Exchange rates in BRL for USD, EUR, GBP (BACEN) and BTC (CoinGecko), with daily history and currency conversion.
// @host localhost:8080
// @BasePath /
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fx-rate-service/internal/application/services"
	"fx-rate-service/internal/domain/interfaces"
	"fx-rate-service/internal/infrastructure/config"
	"fx-rate-service/internal/infrastructure/exchange/bacen"
	"fx-rate-service/internal/infrastructure/exchange/coingecko"
	"fx-rate-service/internal/infrastructure/logging"
	"fx-rate-service/internal/infrastructure/metrics"
	"fx-rate-service/internal/infrastructure/repositories/cache"
	"fx-rate-service/internal/infrastructure/web/server"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	loggerConfig := logging.NewConfig(cfg.Logging.Level, cfg.Logging.Format, config.GetEnvironment())
	loggerConfig.Version = version
	if err := logging.InitializeGlobalLoggers(loggerConfig); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	ctx := context.Background()
	logging.Info(ctx, "Starting FX rate service", logging.Fields{
		"version":        version,
		"cache_backend":  cfg.Cache.Backend,
		"cache_ttl":      cfg.Cache.TTL.String(),
		"spot_freshness": cfg.Cache.SpotFreshness,
	})

	backend, err := cache.NewFactory().CreateCache(ctx, cache.Config{
		Type:           cache.CacheType(cfg.Cache.Backend),
		RedisAddr:      cfg.Cache.Redis.Addr,
		RedisDB:        cfg.Cache.Redis.DB,
		Password:       cfg.Cache.Redis.Password,
		KeyPrefix:      cfg.Cache.Redis.KeyPrefix,
		ConnectRetries: cfg.Cache.Redis.ConnectRetries,
	})
	if err != nil {
		logging.ErrorWithError(ctx, "Failed to create cache backend", err, nil)
		os.Exit(1)
	}
	if closer, ok := backend.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	store := cache.NewRateStore(backend, cache.StoreOptions{
		TTL:             cfg.Cache.TTL,
		SharedSpotStamp: cfg.Cache.SpotFreshness == config.SpotFreshnessShared,
	})

	rateService := services.NewRateService(
		bacen.NewClient(cfg.Upstreams.Bacen),
		coingecko.NewClient(cfg.Upstreams.CoinGecko),
		store,
		nil,
	)

	metrics.SetApplicationInfo(version, cfg.Cache.Backend, cfg.Cache.SpotFreshness)

	pinger, _ := backend.(interfaces.Pinger)
	router := server.NewRouter(server.RouterDeps{
		RateService: rateService,
		CachePinger: pinger,
		RateLimit:   cfg.RateLimit,
		Auth:        cfg.Auth,
	})

	srv := server.NewServer(router, cfg.Server)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			logging.ErrorWithError(ctx, "HTTP server failed", err, nil)
			os.Exit(1)
		}
		return
	case sig := <-quit:
		logging.Info(ctx, "Shutdown signal received", logging.Fields{"signal": sig.String()})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	start := time.Now()
	if err := srv.Stop(shutdownCtx); err != nil {
		logging.ErrorWithError(ctx, "Server forced to shutdown", err, nil)
		return
	}

	logging.Info(ctx, "Server shutdown completed", logging.Fields{
		logging.FieldDuration: float64(time.Since(start).Nanoseconds()) / 1e6,
	})
}

func loadConfig(path string) (*config.Config, error) {
	loader := config.NewLoader()

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = loader.LoadFile(path)
	} else {
		cfg, err = loader.Load()
	}
	if err != nil {
		return nil, err
	}

	if err := config.NewValidator().Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
