// Package config loads the adminctl client configuration.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Server   string `env:"ADMINCTL_SERVER,    default=http://localhost:8080"`
	TokenDir string `env:"ADMINCTL_TOKEN_DIR"`
	PageSize int    `env:"ADMINCTL_PAGE_SIZE, default=10"`
	LogLevel string `env:"ADMINCTL_LOG_LEVEL, default=warn"`
}

// Load reads configuration from ADMINCTL_* environment variables.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if cfg.TokenDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("config: resolve token dir: %w", err)
		}
		cfg.TokenDir = filepath.Join(dir, "adminctl")
	}
	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("config: ADMINCTL_PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}
	return &cfg, nil
}
