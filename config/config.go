package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"rate-normalizer/logger"
)

// EnvPrefix is stripped from environment variables before they are mapped to
// config keys: RATENORM_REDIS_ADDR -> redis.addr.
const EnvPrefix = "RATENORM_"

type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Limiter LimiterConfig `koanf:"limiter"`
	Redis   RedisConfig   `koanf:"redis"`
	Log     LogConfig     `koanf:"log"`
}

type ServerConfig struct {
	Addr            string        `koanf:"addr"`
	ReadTimeout     time.Duration `koanf:"readtimeout"`
	WriteTimeout    time.Duration `koanf:"writetimeout"`
	IdleTimeout     time.Duration `koanf:"idletimeout"`
	ShutdownTimeout time.Duration `koanf:"shutdowntimeout"`
}

// LimiterConfig controls the per-client token bucket: Capacity requests per Window.
type LimiterConfig struct {
	Capacity int           `koanf:"capacity"`
	Window   time.Duration `koanf:"window"`
}

// RedisConfig selects the diagnostics cache. An empty Addr keeps the cache in memory.
type RedisConfig struct {
	Addr string        `koanf:"addr"`
	TTL  time.Duration `koanf:"ttl"`
}

type LogConfig struct {
	Level string `koanf:"level"`
	JSON  bool   `koanf:"json"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Limiter: LimiterConfig{
			Capacity: 5,
			Window:   time.Minute,
		},
		Redis: RedisConfig{
			TTL: 24 * time.Hour,
		},
		Log: LogConfig{
			Level: string(logger.InfoLevel),
		},
	}
}

// Load builds the configuration from defaults overridden by RATENORM_*
// environment variables, then validates it.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load default config: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key string, value string) (string, any) {
			return transformEnvKey(key), value
		},
	}), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail late at runtime.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr must not be empty"))
	}
	if c.Limiter.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("limiter.capacity must be positive, got %d", c.Limiter.Capacity))
	}
	if c.Limiter.Window <= 0 {
		errs = append(errs, fmt.Errorf("limiter.window must be positive, got %s", c.Limiter.Window))
	}
	if c.Redis.TTL < 0 {
		errs = append(errs, fmt.Errorf("redis.ttl must not be negative, got %s", c.Redis.TTL))
	}
	if !logger.LogLevel(c.Log.Level).Valid() {
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// LoggerConfig adapts the log section for logger.NewLogger.
func (c Config) LoggerConfig() *logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = logger.LogLevel(c.Log.Level)
	cfg.JSON = c.Log.JSON
	return cfg
}

// transformEnvKey maps RATENORM_SERVER_READTIMEOUT to server.readtimeout.
func transformEnvKey(key string) string {
	key = strings.TrimPrefix(key, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(key), "_", ".")
}
