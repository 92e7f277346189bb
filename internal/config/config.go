package config

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// RateLimitRPS is the sustained number of requests per second accepted
	// across all clients. Zero disables rate limiting.
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps" validate:"gte=0"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst" validate:"gte=1"`
}

// DatabaseConfig contains the connection settings for the read and write pools.
type DatabaseConfig struct {
	// URL is the primary (write) connection string.
	URL string `mapstructure:"url" validate:"required,url"`
	// ReadURL points at a replica. Empty means reads go to URL.
	ReadURL string `mapstructure:"read_url" validate:"omitempty,url"`

	MaxOpenConns           int `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns           int `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetimeMinutes int `mapstructure:"conn_max_lifetime_minutes" validate:"gte=1"`
}

// ReadConnectionURL returns the connection string used for read queries.
func (c DatabaseConfig) ReadConnectionURL() string {
	if c.ReadURL != "" {
		return c.ReadURL
	}
	return c.URL
}
