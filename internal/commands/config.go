package commands

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/trendify-core/client/internal/api"
	"github.com/trendify-core/client/internal/core"
	"github.com/trendify-core/client/internal/session"
	logx "github.com/trendify-core/client/pkg/logger"
	pkgredis "github.com/trendify-core/client/pkg/redis"
)

// AppConfig defines every configurable parameter of the client, sourced from
// environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// Remote API
	API api.Config

	// Session persistence
	Session session.Config
	Redis   pkgredis.Config
}

func (c AppConfig) Env() core.Environment {
	return core.ParseEnvironment(c.Environment)
}

// loadConfig reads envFile (if present) and binds the environment.
func loadConfig(envFile string) (AppConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			logx.Debug().Err(err).Str("file", envFile).Msg("no env file loaded")
		}
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
