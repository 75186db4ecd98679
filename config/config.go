// Package config loads linkmark configuration from defaults, an optional
// config file, and LINKMARK_-prefixed environment variables.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig
	Extract ExtractConfig
	Image   ImageConfig
}

// ServerConfig holds settings for the serve command.
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	RateLimitRPS   float64  `mapstructure:"rate_limit_rps"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
}

// ExtractConfig holds extraction defaults.
type ExtractConfig struct {
	TitleMaxLength int  `mapstructure:"title_max_length"`
	Verbose        bool `mapstructure:"verbose"`
}

// ImageConfig holds image URL composition defaults.
type ImageConfig struct {
	CDNHost    string `mapstructure:"cdn_host"`
	SquareSide int    `mapstructure:"square_side"`
	Quality    int    `mapstructure:"quality"`
}

// Load reads configuration. A missing config file is fine; defaults and
// environment variables cover everything.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("linkmark")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/linkmark")

	v.SetEnvPrefix("LINKMARK")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8089")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"moz-extension://*", "chrome-extension://*"})
	v.SetDefault("server.rate_limit_rps", 10.0)
	v.SetDefault("server.rate_limit_burst", 20)

	v.SetDefault("extract.title_max_length", 80)
	v.SetDefault("extract.verbose", false)

	v.SetDefault("image.cdn_host", "m.media-amazon.com")
	v.SetDefault("image.square_side", 500)
	v.SetDefault("image.quality", 95)
}

// validate checks value ranges.
func validate(config *Config) error {
	if config.Extract.TitleMaxLength < 10 {
		return fmt.Errorf("extract.title_max_length must be at least 10, got %d", config.Extract.TitleMaxLength)
	}
	if config.Image.Quality < 1 || config.Image.Quality > 100 {
		return fmt.Errorf("image.quality must be between 1 and 100, got %d", config.Image.Quality)
	}
	if config.Server.RateLimitRPS <= 0 {
		return fmt.Errorf("server.rate_limit_rps must be positive, got %v", config.Server.RateLimitRPS)
	}
	return nil
}
