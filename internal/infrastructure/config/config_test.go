package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.StoreDriver != StoreMongo || cfg.Storage.Driver != StorageLocal {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.TokenTTL != 24*time.Hour || cfg.Login.Window != 15*time.Minute || cfg.Login.MaxAttempts != 5 {
		t.Fatalf("unexpected durations: %+v", cfg)
	}
	if cfg.Storage.MaxUploadBytes != 2<<20 {
		t.Fatalf("expected 2 MiB upload limit, got %d", cfg.Storage.MaxUploadBytes)
	}
	if cfg.Admin.Email != "admin@admin.com" || cfg.Admin.Password != "admin123" {
		t.Fatalf("unexpected admin seed: %+v", cfg.Admin)
	}
}

func TestLoad_Validation(t *testing.T) {
	cases := map[string]map[string]string{
		"missing secret":  {},
		"unknown store":   {"JWT_SECRET": "s", "STORE_DRIVER": "sqlite"},
		"unknown storage": {"JWT_SECRET": "s", "STORAGE_DRIVER": "ftp"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := load(context.Background(), envconfig.MapLookuper(env)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoad_S3Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":     "s",
		"STORAGE_DRIVER": "s3",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.S3.Region != "us-east-1" || cfg.Storage.S3.Bucket != "photos" {
		t.Fatalf("unexpected s3 defaults: %+v", cfg.Storage.S3)
	}
}
