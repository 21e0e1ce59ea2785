package cmd

import (
	"context"
	"fmt"
	"io"

	"rate-normalizer/config"
	"rate-normalizer/logger"
	"rate-normalizer/repository"
	"rate-normalizer/service"
)

// app holds the dependencies shared by every subcommand.
type app struct {
	cfg     config.Config
	log     logger.Logger
	service *service.RateService
	close   func() error
}

func newApp(ctx context.Context, logOutput io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logCfg := cfg.LoggerConfig()
	logCfg.Output = logOutput
	log := logger.NewLogger(logCfg)

	var (
		cache     repository.CacheRepository
		closeFunc = func() error { return nil }
	)
	if cfg.Redis.Addr != "" {
		redisCache := repository.NewRedisCache(cfg.Redis.Addr, cfg.Redis.TTL)
		if err := redisCache.Ping(ctx); err != nil {
			_ = redisCache.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		log.Info("usando caché redis", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
		cache = redisCache
		closeFunc = redisCache.Close
	} else {
		cache = repository.NewMemoryCache()
	}

	quarantine := repository.NewQuarantineRepositoryMemory()

	return &app{
		cfg:     cfg,
		log:     log,
		service: service.NewRateService(cache, quarantine, log),
		close:   closeFunc,
	}, nil
}
