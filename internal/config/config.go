package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`
	// sentry
	SentryEnabled bool `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// prometheus metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// AppGroupNamespace prefixes every key shared with the widget
	// process through redis (rest end time, activity documents).
	AppGroupNamespace string `toml:"app_group_namespace"`
	// DefaultRestSeconds is used when a completed set does not
	// carry an explicit rest duration.
	DefaultRestSeconds int `toml:"default_rest_seconds"`
	// LiveActivitiesEnabled can kill-switch all widget pushes.
	LiveActivitiesEnabled bool `toml:"live_activities_enabled"`
	// IntentsRateLimitAllowedPerMin limits the widget intent endpoints
	// (a stuck +15s button must not hammer the service).
	IntentsRateLimitAllowedPerMin int `toml:"intents_rate_limit_allowed_per_min"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var tomlCfg Toml
	if _, err := toml.Decode(string(content), &tomlCfg); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := tomlCfg.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	cfg.Environment = env
	if cfg.DefaultRestSeconds <= 0 {
		cfg.DefaultRestSeconds = 90
	}
	if cfg.IntentsRateLimitAllowedPerMin <= 0 {
		cfg.IntentsRateLimitAllowedPerMin = 60
	}

	return cfg, nil
}
