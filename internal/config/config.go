// Package config loads, validates and saves the ileap YAML configuration
// (~/.ileap/config.yaml by default).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/rshade/ileap/internal/batch"
	"github.com/rshade/ileap/internal/demodata"
	"github.com/rshade/ileap/pkg/pact"
)

// Environment variables.
const (
	EnvHome       = "ILEAP_HOME"
	EnvProjectDir = "ILEAP_PROJECT_DIR"
	EnvLogLevel   = "ILEAP_LOG_LEVEL"
	EnvLogFormat  = "ILEAP_LOG_FORMAT"
)

const (
	dirName        = ".ileap"
	fileName       = "config.yaml"
	maxPrecision   = 10
	outputTypeFile = "file"
)

// Output formats accepted by Output.DefaultFormat.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full ileap configuration.
type Config struct {
	Company CompanyConfig `yaml:"company"`
	Mapping MappingConfig `yaml:"mapping"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Demo    DemoConfig    `yaml:"demo"`
	Batch   BatchConfig   `yaml:"batch"`

	configPath string
}

// CompanyConfig identifies the reporting company of converted footprints.
type CompanyConfig struct {
	Name string `yaml:"name"`
	URN  string `yaml:"urn"`
}

// MappingConfig tunes the payload to footprint mapping.
type MappingConfig struct {
	// CharacterizationFactors lists the IPCC reports used, AR5 when empty.
	CharacterizationFactors []pact.CharacterizationFactors `yaml:"characterization_factors"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Precision     int    `yaml:"precision"`
}

// LoggingConfig controls the logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// DemoConfig holds the demo generator defaults.
type DemoConfig struct {
	Size int    `yaml:"size"`
	Seed uint64 `yaml:"seed"`
}

// BatchConfig tunes batch conversion.
type BatchConfig struct {
	Size        int `yaml:"size"`
	Concurrency int `yaml:"concurrency"`
}

// Dir returns the ileap home directory: $ILEAP_HOME, else ~/.ileap.
func Dir() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return dirName
	}
	return filepath.Join(home, dirName)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Company: CompanyConfig{
			Name: demodata.DefaultCompanyName,
			URN:  demodata.DefaultCompanyURN,
		},
		Mapping: MappingConfig{
			CharacterizationFactors: []pact.CharacterizationFactors{pact.AR6},
		},
		Output: OutputConfig{DefaultFormat: FormatJSON, Precision: 2},
		Logging: LoggingConfig{
			Level:  zerolog.LevelInfoValue,
			Format: "console",
		},
		Demo:       DemoConfig{Size: demodata.DefaultSize, Seed: 1},
		Batch:      BatchConfig{Size: batch.DefaultBatchSize, Concurrency: 4},
		configPath: filepath.Join(Dir(), fileName),
	}
}

// New returns the defaults overlaid with the config file, if present, and
// the environment. A broken config file is logged and ignored.
func New() *Config {
	cfg := Default()
	if _, err := os.Stat(cfg.configPath); err == nil {
		loaded := Default()
		if err := loaded.Load(cfg.configPath); err != nil {
			log.Warn().Err(err).Str("path", cfg.configPath).Msg("ignoring unreadable config file")
		} else {
			cfg = loaded
		}
	}
	cfg.applyEnv()
	return cfg
}

// Load reads path over c and makes it c's config path.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	c.configPath = path
	return nil
}

func (c *Config) applyEnv() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		c.Logging.Format = format
	}
}

// ConfigPath returns where Save writes.
func (c *Config) ConfigPath() string { return c.configPath }

// SetConfigPath changes where Save writes.
func (c *Config) SetConfigPath(path string) { c.configPath = path }

// Save writes c as YAML, creating the directory if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if c.Company.URN != "" {
		if _, err := pact.NewUrn(c.Company.URN); err != nil {
			return fmt.Errorf("%w: company.urn: %w", ErrInvalidConfig, err)
		}
	}
	if _, _, err := pact.ResolveCharacterizationFactors(c.Mapping.CharacterizationFactors); err != nil {
		return fmt.Errorf("%w: mapping: %w", ErrInvalidConfig, err)
	}
	if !slices.Contains([]string{FormatJSON, FormatYAML, FormatTable}, c.Output.DefaultFormat) {
		return fmt.Errorf("%w: output.default_format %q must be json, yaml or table",
			ErrInvalidConfig, c.Output.DefaultFormat)
	}
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		return fmt.Errorf("%w: output.precision %d must be between 0 and %d",
			ErrInvalidConfig, c.Output.Precision, maxPrecision)
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: logging.format %q must be console or json", ErrInvalidConfig, c.Logging.Format)
	}
	if c.Demo.Size < 1 || c.Demo.Size > demodata.MaxSize {
		return fmt.Errorf("%w: demo.size %d must be between 1 and %d", ErrInvalidConfig, c.Demo.Size, demodata.MaxSize)
	}
	if c.Batch.Size < batch.MinBatchSize || c.Batch.Size > batch.MaxBatchSize {
		return fmt.Errorf("%w: batch.size %d must be between %d and %d",
			ErrInvalidConfig, c.Batch.Size, batch.MinBatchSize, batch.MaxBatchSize)
	}
	if c.Batch.Concurrency < 1 {
		return fmt.Errorf("%w: batch.concurrency must be positive", ErrInvalidConfig)
	}
	return nil
}

//nolint:gochecknoglobals // Process-wide configuration, set once per CLI invocation.
var (
	globalConfig   *Config
	globalConfigMu sync.Mutex
)

// GetGlobalConfig returns the process configuration, loading it on first
// use.
func GetGlobalConfig() *Config {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if globalConfig == nil {
		globalConfig = New()
	}
	return globalConfig
}

// SetGlobalConfig replaces the process configuration.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalConfigForTest forgets the process configuration.
func ResetGlobalConfigForTest() {
	SetGlobalConfig(nil)
}
