package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains the database connection settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains token signing settings. TokenLifetimeDays controls the
// absolute expiry stamped into issued tokens.
type AuthConfig struct {
	JWTSecret         string `mapstructure:"jwt_secret"          validate:"required,min=32"`
	TokenLifetimeDays int    `mapstructure:"token_lifetime_days" validate:"required,gt=0"`
}
