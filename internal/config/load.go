package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "LAUNCHPAD"

// keys lists every setting so viper can resolve it from the environment
// even when no config file is present.
var keys = []string{
	"server.port",
	"server.log_level",
	"server.shutdown_timeout",
	"auth.jwt_secret",
	"auth.token_lifetime_minutes",
	"auth.cookie_name",
	"auth.secure_cookie",
	"auth.dev_sessions",
	"otel.enabled",
	"otel.endpoint",
	"otel.service_name",
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("auth.cookie_name", "launchpad_session")
	v.SetDefault("auth.secure_cookie", false)
	v.SetDefault("auth.dev_sessions", false)
	v.SetDefault("otel.enabled", true)
	v.SetDefault("otel.service_name", "launchpad")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
