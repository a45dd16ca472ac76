package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Sheet   SheetConfig   `yaml:"sheet" envconfig:"SHEET"`
	Upload  UploadConfig  `yaml:"upload" envconfig:"UPLOAD"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
	RateLimit       RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" default:"100"`
	Burst   int     `yaml:"burst" envconfig:"BURST" default:"50"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"stdout"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/app.log"`
}

// SheetConfig pins the bid sheet layout. The layout is a hard contract with
// the workbook template, configured per deployment, never per request.
type SheetConfig struct {
	Name         string `yaml:"name" envconfig:"NAME" default:"Airline Bids"`
	HeaderRow    int    `yaml:"header_row" envconfig:"HEADER_ROW" default:"11"`
	DataStartRow int    `yaml:"data_start_row" envconfig:"DATA_START_ROW" default:"12"`
	StartColumn  int    `yaml:"start_column" envconfig:"START_COLUMN" default:"3"`
}

// UploadConfig contains workbook upload limits
type UploadConfig struct {
	MaxSizeBytes int64 `yaml:"max_size_bytes" envconfig:"MAX_SIZE_BYTES" default:"20971520"`
}

// Load loads configuration from environment variables and an optional
// YAML config file. Environment variables and defaults are applied first;
// keys present in the file override them.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("BIDS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := os.Getenv("BIDS_CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := loadFromFile(configFile, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Sheet.Name == "" {
		return fmt.Errorf("sheet name must not be empty")
	}
	if c.Sheet.HeaderRow < 1 {
		return fmt.Errorf("invalid header row: %d", c.Sheet.HeaderRow)
	}
	if c.Sheet.DataStartRow <= c.Sheet.HeaderRow {
		return fmt.Errorf("data start row %d must come after header row %d",
			c.Sheet.DataStartRow, c.Sheet.HeaderRow)
	}
	if c.Sheet.StartColumn < 1 {
		return fmt.Errorf("invalid start column: %d", c.Sheet.StartColumn)
	}
	if c.Upload.MaxSizeBytes <= 0 {
		return fmt.Errorf("invalid upload size limit: %d", c.Upload.MaxSizeBytes)
	}
	return nil
}
