package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "DATAV_"

var dotEnvFile = ".env"

// parseEnv loads dotenv (when present) into the process environment and
// overlays cfg with DATAV_* variables.
func parseEnv(cfg *Config, dotenv string) error {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", dotenv, err)
		}
	}

	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return fmt.Errorf("load environment: %w", err)
	}

	for key, dst := range map[string]*string{
		"api_url":        &cfg.APIURL,
		"legacy_api_url": &cfg.LegacyAPIURL,
		"variant":        &cfg.Variant,
		"data_dir":       &cfg.DataDir,
		"log_level":      &cfg.LogLevel,
		"tracing":        &cfg.Tracing,
	} {
		if k.Exists(key) {
			*dst = k.String(key)
		}
	}

	if k.Exists("request_timeout") {
		d, err := time.ParseDuration(k.String("request_timeout"))
		if err != nil {
			return fmt.Errorf("%sREQUEST_TIMEOUT: %w", envPrefix, err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}
