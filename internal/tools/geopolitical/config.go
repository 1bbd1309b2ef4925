// internal/tools/geopolitical/config.go
package geopolitical

import appconfig "finance-agent/internal/common/config"

type Config struct {
	Model string
}

func LoadConfig(cfg *appconfig.Config) *Config {
	return &Config{
		Model: cfg.GenAI.Model,
	}
}
