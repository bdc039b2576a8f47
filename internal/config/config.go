package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Oracle    OracleConfig    `mapstructure:"oracle"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

// DatabaseConfig holds SQLite storage configuration
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// OracleConfig holds the remote analysis oracle configuration.
// When disabled, analysis always runs locally.
type OracleConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	URL     string        `mapstructure:"url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SchedulerConfig controls periodic report generation.
type SchedulerConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	WeeklySpec  string `mapstructure:"weekly_spec"`
	MonthlySpec string `mapstructure:"monthly_spec"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	// Pick up a local .env if present; missing files are fine
	_ = godotenv.Load()

	v := viper.New()

	// Set default values
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("database.path", "data/momentum.db")
	v.SetDefault("oracle.enabled", false)
	v.SetDefault("oracle.timeout", 5*time.Second)
	v.SetDefault("scheduler.enabled", false)
	v.SetDefault("scheduler.weekly_spec", "0 6 * * 1")
	v.SetDefault("scheduler.monthly_spec", "0 6 1 * *")

	// Read from environment variables
	v.SetEnvPrefix("MOMENTUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Also bind to non-prefixed environment variables for convenience
	v.BindEnv("server.port", "PORT")
	v.BindEnv("database.path", "DATABASE_PATH")
	v.BindEnv("oracle.url", "ORACLE_URL")
	v.BindEnv("oracle.api_key", "ORACLE_API_KEY")

	// Read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// It's okay if config file doesn't exist
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that all required configuration values are present
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.Oracle.Enabled && c.Oracle.URL == "" {
		return fmt.Errorf("ORACLE_URL is required when the oracle is enabled")
	}
	if c.Oracle.Timeout <= 0 {
		c.Oracle.Timeout = 5 * time.Second
	}
	return nil
}
