package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTranscriptDir = "transcripts"
	DefaultLogFile       = "tradewinds.log"
	DefaultLogLevel      = "info"
	DefaultAddr          = ":8080"
	DefaultModel         = "gemini-2.5-flash"
)

// Config holds the application configuration.
type Config struct {
	GeminiAPIKey  string `yaml:"gemini_api_key"`
	Model         string `yaml:"model"`
	Seed          int64  `yaml:"seed"` // 0 picks a time-based seed
	TranscriptDir string `yaml:"transcript_dir"`
	LogFile       string `yaml:"log_file"`
	LogLevel      string `yaml:"log_level"`
	Addr          string `yaml:"addr"`
}

func defaults() Config {
	return Config{
		Model:         DefaultModel,
		TranscriptDir: DefaultTranscriptDir,
		LogFile:       DefaultLogFile,
		LogLevel:      DefaultLogLevel,
		Addr:          DefaultAddr,
	}
}

// LoadConfig loads the configuration. Defaults are overlaid first by the YAML
// file named in TRADEWINDS_CONFIG, if any, and then by environment variables.
func LoadConfig() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("TRADEWINDS_CONFIG"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("TRADEWINDS_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("TRADEWINDS_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid TRADEWINDS_SEED %q", v)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("TRADEWINDS_TRANSCRIPT_DIR"); v != "" {
		cfg.TranscriptDir = v
	}
	if v := os.Getenv("TRADEWINDS_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("TRADEWINDS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TRADEWINDS_ADDR"); v != "" {
		cfg.Addr = v
	}

	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read config file")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "failed to parse config file %s", path)
	}
	return nil
}

// RequireGemini reports an error when no Gemini API key is configured. Only
// the autopilot needs one.
func (c *Config) RequireGemini() error {
	if c.GeminiAPIKey == "" {
		return errors.New("GEMINI_API_KEY environment variable is not set")
	}
	return nil
}
