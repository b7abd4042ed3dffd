// Package config loads service settings from an optional YAML file
// overridden by environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"textile-erp-nav/internal/adapters/http/middleware"
)

type Config struct {
	Port       string          `yaml:"port"`
	TableName  string          `yaml:"table_name"`
	Region     string          `yaml:"region"`
	UserPoolID string          `yaml:"user_pool_id"`
	AuthMode   middleware.Mode `yaml:"auth_mode"`
	CacheTTL   time.Duration   `yaml:"cache_ttl"`
	LogLevel   string          `yaml:"log_level"`
	AppName    string          `yaml:"app_name"`
}

func defaults() Config {
	return Config{
		Port:     "8080",
		AuthMode: middleware.ModeNone,
		CacheTTL: 5 * time.Minute,
		LogLevel: "info",
	}
}

type env func(string) (string, bool)

// Load reads CONFIG_FILE when set and then applies environment overrides.
func Load() (Config, error) {
	return load(os.LookupEnv)
}

func load(lookup env) (Config, error) {
	cfg := defaults()
	if path, ok := lookup("CONFIG_FILE"); ok && path != "" {
		contents, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(contents, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("PORT", &cfg.Port)
	str("TABLE_NAME", &cfg.TableName)
	str("AWS_REGION", &cfg.Region)
	str("COGNITO_USER_POOL_ID", &cfg.UserPoolID)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("APP_NAME", &cfg.AppName)

	if v, ok := lookup("AUTH_MODE"); ok && v != "" {
		cfg.AuthMode = middleware.Mode(v)
	}
	mode, err := middleware.ParseAuthMode(string(cfg.AuthMode))
	if err != nil {
		return Config{}, err
	}
	cfg.AuthMode = mode

	if v, ok := lookup("CACHE_TTL"); ok && v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
		}
		cfg.CacheTTL = ttl
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TableName == "" || c.Region == "" {
		return errors.New("missing required environment variables")
	}
	if c.AuthMode == middleware.ModeCognito && c.UserPoolID == "" {
		return errors.New("COGNITO_USER_POOL_ID is required for cognito auth mode")
	}
	if c.CacheTTL < 0 {
		return errors.New("cache ttl must not be negative")
	}
	return nil
}
