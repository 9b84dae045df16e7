package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"   validate:"required"`
	Otel   OtelConfig   `mapstructure:"otel"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// AuthConfig contains the settings needed to read sessions issued by the
// authentication service.
type AuthConfig struct {
	// JWTSecret is the HMAC key shared with the authentication service.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`
	// TokenLifetimeMinutes only affects tokens minted locally by the
	// session-token command.
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	CookieName           string `mapstructure:"cookie_name"            validate:"required"`
	// SecureCookie forces the Secure attribute on cookies written by the service.
	SecureCookie bool `mapstructure:"secure_cookie"`
	// DevSessions exposes POST /dev/session, which signs in any user ID.
	// Local development only.
	DevSessions bool `mapstructure:"dev_sessions"`
}

// OtelConfig controls trace export. Tracing stays off until an endpoint is set.
type OtelConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"     validate:"omitempty,url"`
	ServiceName string `mapstructure:"service_name" validate:"required"`
}
