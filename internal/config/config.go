// Package config loads the TOML configuration file the CLI and any future
// server entrypoint share.
package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/remnantforge/builds-api/internal/errors"
	"github.com/remnantforge/builds-api/internal/redis"
)

// Config is the root of the TOML configuration file
type Config struct {
	Log   LogConfig   `toml:"log"`
	Redis RedisConfig `toml:"redis"`
	Cache CacheConfig `toml:"cache"`
}

// LogConfig controls the slog handler
type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

// RedisConfig holds the build store connection settings
type RedisConfig struct {
	Address         string `toml:"address"`
	PoolSize        int    `toml:"pool_size"`
	MinIdleConns    int    `toml:"min_idle_conns"`
	ConnMaxIdleSecs int    `toml:"conn_max_idle_secs"`
	MaxRetries      int    `toml:"max_retries"`
	UseTLS          bool   `toml:"use_tls"`
}

// CacheConfig sizes the decoded-build cache
type CacheConfig struct {
	Size int `toml:"size"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  slog.LevelInfo,
			Format: "text",
		},
		Redis: RedisConfig{
			Address: "localhost:6379",
		},
	}
}

// Load reads and decodes a TOML config file
func Load(path string) (*Config, error) {
	file, err := os.Open(path) // #nosec G304 // path comes from the operator's flag
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open config")
	}
	defer func() { _ = file.Close() }()

	cfg := Default()
	if err := toml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to decode config")
	}
	return cfg, nil
}

// RedisOptions converts the redis section into client options
func (c *RedisConfig) RedisOptions() *redis.Options {
	return &redis.Options{
		PoolSize:        c.PoolSize,
		MinIdleConns:    c.MinIdleConns,
		ConnMaxIdleTime: time.Duration(c.ConnMaxIdleSecs) * time.Second,
		MaxRetries:      c.MaxRetries,
		UseTLS:          c.UseTLS,
	}
}

// NewLogger builds a slog.Logger per the log section
func (c *LogConfig) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     c.Level,
		AddSource: c.AddSource,
	}

	var handler slog.Handler
	if c.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
