package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Backend BackendConfig `mapstructure:"backend"`
	Session SessionConfig `mapstructure:"session"`
	Logger  LoggerConfig  `mapstructure:"logger"`
}

type ServerConfig struct {
	AppEnv         string `mapstructure:"app_env"`
	Addr           string `mapstructure:"addr"`
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

type BackendConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type SessionConfig struct {
	File         string        `mapstructure:"file"`
	CookieSecure bool          `mapstructure:"cookie_secure"`
	CookieDomain string        `mapstructure:"cookie_domain"`
	CookieMaxAge time.Duration `mapstructure:"cookie_max_age"`
}

type LoggerConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.AppEnv == "dev"
}

// SetDefaults registers every key so env overrides (MENUFRONT_BACKEND_BASE_URL, ...)
// are picked up by Unmarshal even without a config file.
func SetDefaults(v *viper.Viper) {
	home, _ := os.UserHomeDir()

	v.SetDefault("server.app_env", "production")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allowed_origins", "")
	v.SetDefault("backend.base_url", "http://localhost:8000")
	v.SetDefault("backend.request_timeout", 10*time.Second)
	v.SetDefault("session.file", filepath.Join(home, ".menufront", "session.json"))
	v.SetDefault("session.cookie_secure", false)
	v.SetDefault("session.cookie_domain", "")
	v.SetDefault("session.cookie_max_age", 7*24*time.Hour)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.disable_caller", false)
	v.SetDefault("logger.disable_stacktrace", true)

	v.SetEnvPrefix("menufront")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// plain names used by earlier .env files
	_ = v.BindEnv("backend.base_url", "MENUFRONT_BACKEND_BASE_URL", "BACKEND_BASE_URL")
	_ = v.BindEnv("server.allowed_origins", "MENUFRONT_SERVER_ALLOWED_ORIGINS", "ALLOWED_ORIGINS")
	_ = v.BindEnv("server.app_env", "MENUFRONT_SERVER_APP_ENV", "APP_ENV")
}

// Load reads the optional config file into a Config.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Backend.RequestTimeout <= 0 {
		cfg.Backend.RequestTimeout = 10 * time.Second
	}
	cfg.Backend.BaseURL = strings.TrimRight(cfg.Backend.BaseURL, "/")
	if cfg.IsDevelopment() {
		cfg.Logger.Encoding = "console"
		cfg.Logger.Level = "debug"
	}
	return &cfg, nil
}
