package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"     validate:"required"`
	Broker    BrokerConfig    `mapstructure:"broker"     validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// BrokerConfig contains the message broker connection settings.
//
// URL is deliberately not marked required: the service boots and answers
// health checks without it, and each submission reports a configuration
// error until it is set. The queue name must always be present.
type BrokerConfig struct {
	URL   string `mapstructure:"url"   validate:"omitempty,uri"`
	Queue string `mapstructure:"queue" validate:"required"`
}

// RateLimitConfig controls the per-client request cap on task submission.
// With the defaults each client address may submit 10 tasks per 60 seconds.
type RateLimitConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	Requests      int  `mapstructure:"requests"       validate:"required,gt=0"`
	WindowSeconds int  `mapstructure:"window_seconds" validate:"required,gt=0"`
}
