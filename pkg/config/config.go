package config

import (
	"fmt"
	"os"
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
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feedsync.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule struct {
		Interval       time.Duration `yaml:"interval" json:"interval" jsonschema:"default=5m,description=How often the scheduler checks for due feeds"`
		MaxWorkers     int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent feed refreshes"`
		ConflictWindow int           `yaml:"conflict_window" json:"conflict_window" jsonschema:"default=3,description=Consecutive known items before a refresh stops early"`
		PageSize       int           `yaml:"page_size" json:"page_size" jsonschema:"default=50,description=Feed listing page size"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Fetch FetchConfig `yaml:"fetch" json:"fetch" jsonschema:"description=Feed and page fetching configuration"`

	Summary SummaryConfig `yaml:"summary" json:"summary" jsonschema:"description=LLM configuration for article summaries"`

	Cleanup CleanupConfig `yaml:"cleanup" json:"cleanup" jsonschema:"description=Retention configuration"`
}

// FetchConfig holds HTTP fetching settings shared by the feed fetcher and the
// page extractor
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Fetch timeout per request"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Feedsync/1.0,description=User agent for HTTP requests"`
}

// SummaryConfig holds LLM settings for article summarization
type SummaryConfig struct {
	Enabled      bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable article summaries"`
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the LLM (optional)"`
}

// CleanupConfig holds retention settings
type CleanupConfig struct {
	Interval             time.Duration `yaml:"interval" json:"interval" jsonschema:"default=1h,description=How often the retention sweep runs"`
	KeepPerFeed          int           `yaml:"keep_per_feed" json:"keep_per_feed" jsonschema:"default=150,description=Newest items always kept per feed"`
	RetentionDays        int           `yaml:"retention_days" json:"retention_days" jsonschema:"default=7,description=Item age limit in days"`
	SummaryRetentionDays int           `yaml:"summary_retention_days" json:"summary_retention_days" jsonschema:"default=3,description=Cached summary age limit in days"`
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
		cfg.Database.DSN = "file:feedsync.db?cache=shared&mode=rwc&_txlock=immediate"
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
	if cfg.Schedule.Interval == 0 {
		cfg.Schedule.Interval = 5 * time.Minute
	}
	if cfg.Schedule.MaxWorkers == 0 {
		cfg.Schedule.MaxWorkers = 5
	}
	if cfg.Schedule.ConflictWindow == 0 {
		cfg.Schedule.ConflictWindow = 3
	}
	if cfg.Schedule.PageSize == 0 {
		cfg.Schedule.PageSize = 50
	}

	// set defaults for fetching
	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = 30 * time.Second
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = "Feedsync/1.0"
	}

	// set defaults for summaries
	if cfg.Summary.Temperature == 0 {
		cfg.Summary.Temperature = 0.3
	}
	if cfg.Summary.MaxTokens == 0 {
		cfg.Summary.MaxTokens = 500
	}
	if cfg.Summary.Timeout == 0 {
		cfg.Summary.Timeout = 30 * time.Second
	}

	// set defaults for cleanup
	if cfg.Cleanup.Interval == 0 {
		cfg.Cleanup.Interval = time.Hour
	}
	if cfg.Cleanup.KeepPerFeed == 0 {
		cfg.Cleanup.KeepPerFeed = 150
	}
	if cfg.Cleanup.RetentionDays == 0 {
		cfg.Cleanup.RetentionDays = 7
	}
	if cfg.Cleanup.SummaryRetentionDays == 0 {
		cfg.Cleanup.SummaryRetentionDays = 3
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Schedule.MaxWorkers < 1 {
		return fmt.Errorf("schedule.max_workers must be at least 1")
	}
	if cfg.Schedule.ConflictWindow < 1 {
		return fmt.Errorf("schedule.conflict_window must be at least 1")
	}

	if cfg.Summary.Enabled {
		if cfg.Summary.Endpoint == "" {
			return fmt.Errorf("summary.endpoint is required when summaries are enabled")
		}
		if cfg.Summary.Model == "" {
			return fmt.Errorf("summary.model is required when summaries are enabled")
		}
		if cfg.Summary.Temperature < 0 || cfg.Summary.Temperature > 2 {
			return fmt.Errorf("summary.temperature must be between 0 and 2")
		}
	}

	if cfg.Cleanup.KeepPerFeed < 1 {
		return fmt.Errorf("cleanup.keep_per_feed must be at least 1")
	}
	if cfg.Cleanup.RetentionDays < 1 {
		return fmt.Errorf("cleanup.retention_days must be at least 1")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetSummaryConfig returns LLM summary configuration
func (c *Config) GetSummaryConfig() SummaryConfig {
	return c.Summary
}
