package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/lbw-site/internal/storage/factory"
	"github.com/DjordjeVuckovic/lbw-site/pkg/config/env"
)

const defaultSiteConfigPath = "config/site.yaml"

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type SiteAppConfig struct {
	SiteConfigPath string
	StorageConfig  factory.StorageConfig
}

func (as *AppConfig) Load() (*SiteAppConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/site/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	sitePath := os.Getenv("SITE_CONFIG_PATH")
	if sitePath == "" {
		sitePath = defaultSiteConfigPath
	}

	return &SiteAppConfig{
		SiteConfigPath: sitePath,
		StorageConfig:  *storageCfg,
	}, nil
}
