// internal/tools/exchangerate/config.go
package exchangerate

import (
	"time"

	appconfig "finance-agent/internal/common/config"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

func LoadConfig(cfg *appconfig.Config) *Config {
	return &Config{
		BaseURL: cfg.Providers.ExchangeRate.BaseURL,
		Timeout: appconfig.GetDuration(cfg.Providers.ExchangeRate.Timeout),
	}
}
