// internal/tools/cryptoprice/config.go
package cryptoprice

import (
	"time"

	appconfig "finance-agent/internal/common/config"
)

type Config struct {
	PrimaryBaseURL  string
	PrimaryAPIKey   string
	PrimaryTimeout  time.Duration
	FallbackBaseURL string
	FallbackTimeout time.Duration
}

func LoadConfig(cfg *appconfig.Config) *Config {
	return &Config{
		PrimaryBaseURL:  cfg.Providers.CoinMarketCap.BaseURL,
		PrimaryAPIKey:   cfg.Providers.CoinMarketCap.APIKey,
		PrimaryTimeout:  appconfig.GetDuration(cfg.Providers.CoinMarketCap.Timeout),
		FallbackBaseURL: cfg.Providers.CoinGecko.BaseURL,
		FallbackTimeout: appconfig.GetDuration(cfg.Providers.CoinGecko.Timeout),
	}
}
