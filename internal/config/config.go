package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Log     LogConfig
	Store   StoreConfig
	Metrics MetricsConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type StoreConfig struct {
	IDFormat string
	SeedFile string
}

type MetricsConfig struct {
	Enabled bool
}

// LoadConfig loads configuration from environment variables and an optional .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("DOCSTORE_ID_FORMAT", "uuid")
	v.SetDefault("DOCSTORE_SEED_FILE", "")
	v.SetDefault("METRICS_ENABLED", false)

	cfg := &Config{
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Store: StoreConfig{
			IDFormat: strings.ToLower(strings.TrimSpace(v.GetString("DOCSTORE_ID_FORMAT"))),
			SeedFile: v.GetString("DOCSTORE_SEED_FILE"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
	}

	switch cfg.Store.IDFormat {
	case "uuid", "ulid":
	default:
		return nil, fmt.Errorf("DOCSTORE_ID_FORMAT must be uuid or ulid, got %q", cfg.Store.IDFormat)
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "console", "json":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be console or json, got %q", cfg.Log.Format)
	}

	return cfg, nil
}
