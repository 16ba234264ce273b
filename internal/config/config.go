package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" envconfig:"SERVER"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// AnalysisConfig contains limits for observation uploads
type AnalysisConfig struct {
	MaxUploadBytes int64 `yaml:"max_upload_bytes" envconfig:"MAX_UPLOAD_BYTES"`
	MaxUploadFiles int   `yaml:"max_upload_files" envconfig:"MAX_UPLOAD_FILES"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/ethocli.log",
		},
		Analysis: AnalysisConfig{
			MaxUploadBytes: 32 * 1024 * 1024,
			MaxUploadFiles: 16,
		},
	}
}

// Load builds the configuration by layering: defaults, then the
// optional YAML file, then ETHO_-prefixed environment variables,
// which win.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		if err := loadFromFile(configFile, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// envconfig only touches fields whose variables are set.
	if err := envconfig.Process("ETHO", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// getConfigFilePath returns the YAML config location, overridable via
// ETHO_CONFIG_FILE.
func getConfigFilePath() string {
	if path := os.Getenv("ETHO_CONFIG_FILE"); path != "" {
		return path
	}
	return "ethocli.yaml"
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

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Output) {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid log output: %s", c.Logging.Output)
	}

	if c.Analysis.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload bytes must be positive: %d", c.Analysis.MaxUploadBytes)
	}
	if c.Analysis.MaxUploadFiles <= 0 {
		return fmt.Errorf("max upload files must be positive: %d", c.Analysis.MaxUploadFiles)
	}

	return nil
}
