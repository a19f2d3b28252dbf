package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	GoveeCfg *GoveeConfig
	LogLevel string `env:"LOG_LEVEL" envDefault:"INFO"`
}

type GoveeConfig struct {
	APIKey    string        `env:"GOVEE_API_KEY"`
	APIURL    string        `env:"GOVEE_API_URL" envDefault:"https://openapi.api.govee.com/router/api/v1"`
	SKU       string        `env:"GOVEE_DEVICE_SKU"`
	DeviceID  string        `env:"GOVEE_DEVICE_ID"`
	BaseColor string        `env:"GOVEE_BASE_COLOR" envDefault:"FFFFFF"`
	Timeout   time.Duration `env:"GOVEE_TIMEOUT" envDefault:"30s"`
}

// FromEnv builds a Config from the process environment, reading a local
// .env file first when one exists. Used by the lambda entrypoint; the CLI
// assembles its Config from flags instead.
func FromEnv() (*Config, error) {
	_ = godotenv.Load() // a missing .env file is fine.

	cfg := &Config{GoveeCfg: &GoveeConfig{}}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.GoveeCfg == nil {
		return errors.New("govee config is required")
	}
	if c.GoveeCfg.APIKey == "" {
		return errors.New("govee api key is required")
	}
	if c.GoveeCfg.SKU == "" || c.GoveeCfg.DeviceID == "" {
		return errors.New("device sku and id are required")
	}
	return nil
}
