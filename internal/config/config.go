package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Extractor   ExtractorConfig   `yaml:"extractor"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Resources   ResourcesConfig   `yaml:"resources"`
	Paths       PathsConfig       `yaml:"paths"`
	Report      ReportConfig      `yaml:"report"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Schedule    string            `yaml:"schedule"`
}

type ExtractorConfig struct {
	PDFBackend  string   `yaml:"pdf_backend"`
	DOCXBackend string   `yaml:"docx_backend"`
	Encodings   []string `yaml:"encodings"`
	MaxFileSize int64    `yaml:"max_file_size"`
}

type SummarizerConfig struct {
	Mode      string `yaml:"mode"`
	Sentences int    `yaml:"sentences"`
	MaxLength int    `yaml:"max_length"`
	Workers   int    `yaml:"workers"`
}

type ResourcesConfig struct {
	CacheDir   string `yaml:"cache_dir"`
	Source     string `yaml:"source"`
	BaseURL    string `yaml:"base_url"`
	MaxRetries int    `yaml:"max_retries"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type ReportConfig struct {
	Format string `yaml:"format"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load reads a YAML config file, expanding ${VAR} references from the
// environment and from an optional .env file next to it.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(filepath.Join(filepath.Dir(path), ".env")); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns a validated config with every default applied.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with environment variable values.
func expandEnvVars(s string) string {
	return envVarRegex.ReplaceAllStringFunc(s, func(match string) string {
		varName := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		return match
	})
}

func (c *Config) Validate() error {
	if c.Extractor.PDFBackend == "" {
		c.Extractor.PDFBackend = "native"
	}
	if c.Extractor.DOCXBackend == "" {
		c.Extractor.DOCXBackend = "native"
	}
	if len(c.Extractor.Encodings) == 0 {
		c.Extractor.Encodings = []string{"utf-8", "utf-16", "latin-1"}
	}
	if c.Extractor.MaxFileSize <= 0 {
		c.Extractor.MaxFileSize = 100 * 1024 * 1024
	}

	if c.Summarizer.Mode == "" {
		c.Summarizer.Mode = "extractive"
	}
	if c.Summarizer.Mode != "extractive" && c.Summarizer.Mode != "abstractive" {
		return fmt.Errorf("summarizer.mode must be extractive or abstractive, got %q", c.Summarizer.Mode)
	}
	if c.Summarizer.Sentences < 0 {
		return fmt.Errorf("summarizer.sentences must not be negative")
	}
	if c.Summarizer.Sentences == 0 {
		c.Summarizer.Sentences = 5
	}
	if c.Summarizer.MaxLength < 0 {
		return fmt.Errorf("summarizer.max_length must not be negative")
	}
	if c.Summarizer.MaxLength == 0 {
		c.Summarizer.MaxLength = 150
	}
	if c.Summarizer.Workers <= 0 {
		c.Summarizer.Workers = 1
	}

	if c.Resources.CacheDir == "" {
		c.Resources.CacheDir = "nltk_data"
	}
	if c.Resources.Source == "" {
		c.Resources.Source = "bundled"
	}
	switch c.Resources.Source {
	case "bundled":
	case "remote":
		if c.Resources.BaseURL == "" {
			return fmt.Errorf("resources.base_url is required when resources.source is remote")
		}
	default:
		return fmt.Errorf("resources.source must be bundled or remote, got %q", c.Resources.Source)
	}
	if c.Resources.MaxRetries < 0 {
		return fmt.Errorf("resources.max_retries must not be negative")
	}
	if c.Resources.MaxRetries == 0 {
		c.Resources.MaxRetries = 3
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}

	if c.Report.Format == "" {
		c.Report.Format = "markdown"
	}
	switch c.Report.Format {
	case "markdown", "docx", "both":
	default:
		return fmt.Errorf("report.format must be markdown, docx or both, got %q", c.Report.Format)
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Schedule == "" {
		c.Schedule = "0 * * * *"
	}

	return nil
}
