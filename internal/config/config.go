package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	Server      ServerConfig
	LogLevel    string `mapstructure:"LOG_LEVEL"`
}

type ServerConfig struct {
	Host string `mapstructure:"SERVER_HOST"`
	Port string `mapstructure:"SERVER_PORT"`
}

// Load yapılandırmayı ortam değişkenlerinden okur. Bağlantı adresi ile
// sunucu host/port değerlerinin varsayılanı yoktur; eksik olmaları hatadır.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	var cfg Config

	cfg.DatabaseURL = viper.GetString("DATABASE_URL")
	cfg.Server.Host = viper.GetString("SERVER_HOST")
	cfg.Server.Port = viper.GetString("SERVER_PORT")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL tanımlı değil")
	}
	if cfg.Server.Host == "" {
		return nil, fmt.Errorf("SERVER_HOST tanımlı değil")
	}
	if cfg.Server.Port == "" {
		return nil, fmt.Errorf("SERVER_PORT tanımlı değil")
	}

	return &cfg, nil
}
