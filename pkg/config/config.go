package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:screenwatch.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule struct {
		ScrapeInterval time.Duration `yaml:"scrape_interval" json:"scrape_interval" jsonschema:"default=15m,description=Interval between ingestion runs"`
		MaxWorkers     int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent store lookups per run"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Source struct {
		URL       string        `yaml:"url" json:"url" jsonschema:"required,description=Listings page URL to scrape"`
		UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Screenwatch/1.0,description=User agent for page requests"`
		Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Page fetch timeout"`
	} `yaml:"source" json:"source" jsonschema:"description=Upstream listings source configuration"`

	SMTP SMTPConfig `yaml:"smtp" json:"smtp" jsonschema:"description=Mail transport configuration"`
}

// SMTPConfig holds mail transport settings
type SMTPConfig struct {
	Host     string `yaml:"host" json:"host" jsonschema:"required,description=SMTP server host"`
	Port     int    `yaml:"port" json:"port" jsonschema:"default=587,description=SMTP server port"`
	User     string `yaml:"user" json:"user" jsonschema:"description=SMTP username"`
	Password string `yaml:"password" json:"password" jsonschema:"description=SMTP password (can use environment variable)"`
	From     string `yaml:"from" json:"from" jsonschema:"required,description=Sender address for notifications"`
	SSL      bool   `yaml:"ssl" json:"ssl" jsonschema:"default=false,description=Use implicit TLS (port 465 style) instead of STARTTLS"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:screenwatch.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for schedule
	if cfg.Schedule.ScrapeInterval == 0 {
		cfg.Schedule.ScrapeInterval = 15 * time.Minute
	}
	if cfg.Schedule.MaxWorkers == 0 {
		cfg.Schedule.MaxWorkers = 5
	}

	// set defaults for source
	if cfg.Source.UserAgent == "" {
		cfg.Source.UserAgent = "Screenwatch/1.0"
	}
	if cfg.Source.Timeout == 0 {
		cfg.Source.Timeout = 30 * time.Second
	}

	// set defaults for smtp
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate source config
	if cfg.Source.URL == "" {
		return fmt.Errorf("source.url is required")
	}
	if !strings.HasPrefix(cfg.Source.URL, "http://") && !strings.HasPrefix(cfg.Source.URL, "https://") {
		return fmt.Errorf("source.url must be an http(s) URL")
	}
	if cfg.Source.Timeout < time.Second {
		return fmt.Errorf("source.timeout must be at least 1 second")
	}

	// validate smtp config
	if cfg.SMTP.Host == "" {
		return fmt.Errorf("smtp.host is required")
	}
	if cfg.SMTP.Port < 1 || cfg.SMTP.Port > 65535 {
		return fmt.Errorf("smtp.port must be a valid port number")
	}
	if cfg.SMTP.From == "" {
		return fmt.Errorf("smtp.from is required")
	}

	// validate schedule config
	if cfg.Schedule.ScrapeInterval < time.Minute {
		return fmt.Errorf("schedule.scrape_interval must be at least 1 minute")
	}
	if cfg.Schedule.MaxWorkers < 1 {
		return fmt.Errorf("schedule.max_workers must be at least 1")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
