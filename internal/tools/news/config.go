// internal/tools/news/config.go
package news

import (
	"time"

	appconfig "finance-agent/internal/common/config"
)

type Config struct {
	BaseURL  string
	APIKey   string
	PageSize int
	Timeout  time.Duration
}

func LoadConfig(cfg *appconfig.Config) *Config {
	return &Config{
		BaseURL:  cfg.Providers.News.BaseURL,
		APIKey:   cfg.Providers.News.APIKey,
		PageSize: cfg.Providers.News.PageSize,
		Timeout:  appconfig.GetDuration(cfg.Providers.News.Timeout),
	}
}
