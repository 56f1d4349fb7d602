package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Server)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "adminctl", filepath.Base(cfg.TokenDir))
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"ADMINCTL_SERVER":    "https://admin.example.com",
		"ADMINCTL_TOKEN_DIR": "/tmp/tokens",
		"ADMINCTL_PAGE_SIZE": "25",
	}))
	require.NoError(t, err)

	assert.Equal(t, "https://admin.example.com", cfg.Server)
	assert.Equal(t, "/tmp/tokens", cfg.TokenDir)
	assert.Equal(t, 25, cfg.PageSize)
}

func TestLoad_RejectsBadPageSize(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{"ADMINCTL_PAGE_SIZE": "0"}))
	require.Error(t, err)
}
