package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type AdminConfig struct {
	Username      string `mapstructure:"username"`
	Password      string `mapstructure:"password"`
	PasswordHash  string `mapstructure:"password_hash"`
	SessionSecret string `mapstructure:"session_secret"`
}

type StoreConfig struct {
	Driver     string `mapstructure:"driver"`
	DSN        string `mapstructure:"dsn"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type RateLimitConfig struct {
	Enabled   bool     `mapstructure:"enabled"`
	PerMinute int      `mapstructure:"per_minute"`
	Burst     int      `mapstructure:"burst"`
	Whitelist []string `mapstructure:"whitelist"`
}

// Config is the server configuration. Values come from config.yaml (optional),
// then the environment, which .env feeds through godotenv.
type Config struct {
	Port          string          `mapstructure:"port"`
	GinMode       string          `mapstructure:"gin_mode"`
	BaseURL       string          `mapstructure:"base_url"`
	SecureCookies bool            `mapstructure:"secure_cookies"`
	TemplatesDir  string          `mapstructure:"templates_dir"`
	Store         StoreConfig     `mapstructure:"store"`
	Admin         AdminConfig     `mapstructure:"admin"`
	RateLimit     RateLimitConfig `mapstructure:"rate_limit"`
}

// env names kept short and unprefixed, like most hosting platforms expect
var envBindings = map[string]string{
	"port":                  "PORT",
	"gin_mode":              "GIN_MODE",
	"base_url":              "SITE_BASE_URL",
	"secure_cookies":        "SECURE_COOKIES",
	"templates_dir":         "TEMPLATES_DIR",
	"store.driver":          "STORE_DRIVER",
	"store.dsn":             "DATABASE_URL",
	"store.sqlite_path":     "SQLITE_PATH",
	"admin.username":        "ADMIN_USERNAME",
	"admin.password":        "ADMIN_PASSWORD",
	"admin.password_hash":   "ADMIN_PASSWORD_HASH",
	"admin.session_secret":  "ADMIN_SESSION_SECRET",
	"rate_limit.enabled":    "RATE_LIMIT_ENABLED",
	"rate_limit.per_minute": "RATE_LIMIT_PER_MINUTE",
	"rate_limit.burst":      "RATE_LIMIT_BURST",
	"rate_limit.whitelist":  "RATE_LIMIT_WHITELIST",
}

// LoadConfig reads cfgFile if given, otherwise ./config.yaml when present.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("base_url", "")
	v.SetDefault("secure_cookies", false)
	v.SetDefault("templates_dir", "templates")
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.dsn", "")
	v.SetDefault("store.sqlite_path", "portfolio.db")
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.per_minute", 5)
	v.SetDefault("rate_limit.burst", 3)
	v.SetDefault("rate_limit.whitelist", []string{})

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Println("Using config file:", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	cfg.RateLimit.Whitelist = splitList(cfg.RateLimit.Whitelist)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	if _, err := dialectFor(c.Store.Driver); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.Store.DataSource() == "" {
		if d, _ := dialectFor(c.Store.Driver); d == sqliteDialect {
			return fmt.Errorf("config error: 'store.sqlite_path' must not be empty")
		}
		return fmt.Errorf("config error: DATABASE_URL is required for the %s store", c.Store.Driver)
	}
	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("config error: 'rate_limit.per_minute' must be positive")
	}
	if c.RateLimit.Burst < 0 {
		return fmt.Errorf("config error: 'rate_limit.burst' must be non-negative")
	}
	return nil
}

// DataSource picks the DSN for the configured driver. DATABASE_URL only
// applies to postgres so a stray value never reaches sqlite.
func (s StoreConfig) DataSource() string {
	if d, err := dialectFor(s.Driver); err == nil && d == sqliteDialect {
		return s.SQLitePath
	}
	return s.DSN
}

// splitList flattens comma-separated entries, which is how lists arrive from env.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
