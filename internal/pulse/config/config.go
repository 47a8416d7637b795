package config

import (
	"golang-overlord-pulse/pkg/config"
)

// NewsAPI holds the configuration for the NewsAPI article source.
type NewsAPI struct {
	BaseURL             string `mapstructure:"base_url"`
	APIKey              string `mapstructure:"api_key"`
	PageSize            int    `mapstructure:"page_size"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// Pulse holds pulse-engine configuration.
type Pulse struct {
	// Source selects the article source adapter: "newsapi" or "googlerss".
	Source      string `mapstructure:"source"`
	CronSpec    string `mapstructure:"cron_spec"`
	CronSecret  string `mapstructure:"cron_secret"`
	AdminSecret string `mapstructure:"admin_secret"`
}

// Config holds the full configuration for the pulse service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	Database config.Database `mapstructure:"database"`
	Redis    config.Redis    `mapstructure:"redis"`
	API      config.API      `mapstructure:"api"`
	NewsAPI  NewsAPI         `mapstructure:"news_api"`
	Pulse    Pulse           `mapstructure:"pulse"`
	Telegram config.Telegram `mapstructure:"telegram"`
}

// Load loads the pulse service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	if cfg.NewsAPI.BaseURL == "" {
		cfg.NewsAPI.BaseURL = "https://newsapi.org/v2/everything"
	}
	if cfg.NewsAPI.PageSize <= 0 {
		cfg.NewsAPI.PageSize = 15
	}
	if cfg.NewsAPI.MaxRequestPerMinute <= 0 {
		cfg.NewsAPI.MaxRequestPerMinute = 30
	}
	if cfg.Pulse.Source == "" {
		cfg.Pulse.Source = "newsapi"
	}
	return &cfg, nil
}
