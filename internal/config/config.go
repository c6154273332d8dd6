package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/prometheus/common/model"
	"gopkg.in/yaml.v3"

	"github.com/wen911119/preact/internal/errors"
)

const (
	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the log handler used when none is configured.
	DefaultLogFormat = "text"

	// DefaultNamespace is the Prometheus namespace for builder metrics.
	DefaultNamespace = "preact"

	// DefaultTracerName is the otel tracer name used by the CLI.
	DefaultTracerName = "github.com/wen911119/preact"

	// DefaultIndent is the number of spaces used when printing documents.
	DefaultIndent = 2
)

// FileNames lists the configuration files Load looks for, in order.
var FileNames = []string{"preact.json", "preact.yaml", "preact.yml"}

// Config represents the complete preact configuration.
type Config struct {
	// Log configures the command's logger.
	Log LogConfig `json:"log" yaml:"log"`

	// Metrics configures the Prometheus builder hook.
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`

	// Tracing configures the otel builder hook.
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`

	// Output controls how built documents are printed.
	Output OutputConfig `json:"output" yaml:"output"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// LogConfig contains logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// TracingConfig contains otel settings.
type TracingConfig struct {
	Enabled    bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	TracerName string `json:"tracerName,omitempty" yaml:"tracerName,omitempty"`
}

// OutputConfig contains document output settings.
type OutputConfig struct {
	// Indent is the JSON indent width. Zero prints compact JSON.
	Indent *int `json:"indent,omitempty" yaml:"indent,omitempty"`
}

// Default creates a new Config with default values.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from the specified directory.
// It uses the first of FileNames present in dir, or the defaults when
// there is none.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return Default(), nil
}

// LoadFile reads configuration from the specified file path.
// The file type is taken from its extension.
func LoadFile(path string) (*Config, error) {
	unmarshal, err := codecFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E100").
			WithDetail("Cannot read " + path).
			Wrap(err)
	}

	cfg := &Config{}
	if err := unmarshal(data, cfg); err != nil {
		return nil, errors.New("E100").
			WithDetail("Failed to parse " + filepath.Base(path)).
			WithSuggestion("Check that " + filepath.Base(path) + " is well formed").
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func codecFor(path string) (func([]byte, any) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Unmarshal, nil
	case ".yaml", ".yml":
		return yaml.Unmarshal, nil
	default:
		return nil, errors.New("E104").
			WithDetail("Cannot load " + path).
			WithSuggestion("Use a .json, .yaml or .yml file")
	}
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path, as JSON or YAML
// depending on its extension.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		return errors.New("E104").WithDetail("Cannot save " + path)
	}
	if err != nil {
		return errors.New("E100").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("E100").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// IndentWidth returns the configured indent, or DefaultIndent.
func (c *Config) IndentWidth() int {
	if c.Output.Indent == nil {
		return DefaultIndent
	}
	return *c.Output.Indent
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultTracerName
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("E101").
			WithDetail("log.level is " + quote(c.Log.Level)).
			WithSuggestion("Use one of debug, info, warn, error")
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.New("E102").
			WithDetail("log.format is " + quote(c.Log.Format)).
			WithSuggestion("Use text or json")
	}

	if !model.IsValidMetricName(model.LabelValue(c.Metrics.Namespace)) {
		return errors.New("E103").
			WithDetail("metrics.namespace is " + quote(c.Metrics.Namespace)).
			WithSuggestion("Use letters, digits and underscores, starting with a letter")
	}

	if c.Output.Indent != nil && (*c.Output.Indent < 0 || *c.Output.Indent > 8) {
		return errors.Newf(errors.CategoryConfig, "output.indent must be between 0 and 8")
	}
	return nil
}

func quote(s string) string {
	return `"` + s + `"`
}
