package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Supported values of DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBDriver    string `mapstructure:"DB_DRIVER"`
	ServerAddr  string `mapstructure:"SERVER_ADDR"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	GinMode     string `mapstructure:"GIN_MODE"`
	SeedGames   bool   `mapstructure:"SEED_GAMES"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file in the working
// directory and from environment variables.
func LoadConfig() (*Config, error) {
	return Load(".")
}

// Load reads <dir>/.env when present; environment variables take precedence.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.SetDefault("DATABASE_URL", "file:gamestore.db")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("SEED_GAMES", true)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	switch cfg.DBDriver {
	case DriverPostgres, DriverSQLite, DriverMemory:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if cfg.DBDriver != DriverMemory && cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	AppConfig = &cfg
	return &cfg, nil
}
