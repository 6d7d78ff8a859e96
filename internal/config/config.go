package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds every runtime setting of the dashboard backend.
type Config struct {
	ListenAddr  string `mapstructure:"listen_addr"`
	DatabaseURL string `mapstructure:"database_url"`
	RedisAddr   string `mapstructure:"redis_addr"`
	JWTSecret   string `mapstructure:"jwt_secret"`

	RateLimitPerSecond float64 `mapstructure:"rate_limit_per_second"`
	RateLimitBurst     int     `mapstructure:"rate_limit_burst"`

	AlertFrom        string `mapstructure:"alert_from"`
	AlertTo          string `mapstructure:"alert_to"`
	SMTPServer       string `mapstructure:"smtp_server"`
	SMTPPort         string `mapstructure:"smtp_port"`
	SMTPUser         string `mapstructure:"smtp_user"`
	SMTPPassword     string `mapstructure:"smtp_pass"`
	SMTPAuthDisabled bool   `mapstructure:"smtp_auth_disabled"`
}

// Load reads settings from environment variables, optionally overlaid by an
// ops-dashboard.yaml config file in the working directory.
func Load() (Config, error) {
	viper.SetConfigName("ops-dashboard")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("listen_addr", ":8080")
	viper.SetDefault("redis_addr", "localhost:6379")
	viper.SetDefault("rate_limit_per_second", 1.0)
	viper.SetDefault("rate_limit_burst", 3)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = viper.GetString("DATABASE_URL")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = viper.GetString("JWT_SECRET")
	}
	return cfg, nil
}
