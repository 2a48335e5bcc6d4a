package main

import (
	"fmt"
	"strings"

	"farmquest_backend/internal/storage"

	"github.com/spf13/viper"
)

const (
	configPath   = "./"
	configName   = "config"
	configFormat = "yaml"
)

const (
	driverMemory   = "memory"
	driverPostgres = "postgres"
)

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	App     AppConfig     `yaml:"app"`

	LogLevel string `yaml:"logLevel"`
}

type StorageConfig struct {
	Driver   string         `yaml:"driver"`
	Postgres storage.Config `yaml:"postgres"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type AppConfig struct {
	// DefaultUserID is the demo account every unauthenticated request acts
	// as. It must exist in the seed dataset.
	DefaultUserID string `yaml:"defaultUserId"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(configName)
	viper.AddConfigPath(configPath)
	viper.SetConfigType(configFormat)

	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = driverMemory
	}
	if cfg.App.DefaultUserID == "" {
		cfg.App.DefaultUserID = "user-1"
	}

	return &cfg, nil
}
