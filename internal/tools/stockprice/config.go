// internal/tools/stockprice/config.go
package stockprice

import (
	"time"

	appconfig "finance-agent/internal/common/config"
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func LoadConfig(cfg *appconfig.Config) *Config {
	return &Config{
		BaseURL: cfg.Providers.AlphaVantage.BaseURL,
		APIKey:  cfg.Providers.AlphaVantage.APIKey,
		Timeout: appconfig.GetDuration(cfg.Providers.AlphaVantage.Timeout),
	}
}
