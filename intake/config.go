package intake

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the intake service configuration, read from environment
// variables or an optional .env file.
type Config struct {
	ListenAddr      string `mapstructure:"MTB_LISTEN_ADDR"`
	DatabasePath    string `mapstructure:"MTB_DATABASE_PATH"`
	QueryServiceURL string `mapstructure:"MTB_QUERY_SERVICE_URL"`
	LogLevel        string `mapstructure:"MTB_LOG_LEVEL"`
}

// LoadConfig reads the configuration. Missing values fall back to
// defaults suitable for local use; only the database path is required.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("MTB_LISTEN_ADDR", ":9000")
	v.SetDefault("MTB_DATABASE_PATH", "mtb-intake.db")
	v.SetDefault("MTB_LOG_LEVEL", "info")

	v.BindEnv("MTB_LISTEN_ADDR")
	v.BindEnv("MTB_DATABASE_PATH")
	v.BindEnv("MTB_QUERY_SERVICE_URL")
	v.BindEnv("MTB_LOG_LEVEL")

	// Try reading .env, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("MTB_DATABASE_PATH is required")
	}

	return cfg, nil
}
