// Package config loads, validates and persists carbonfoot settings.
//
// Settings live in $CARBONFOOT_HOME/config.yaml (default ~/.carbonfoot).
// A project-local .carbonfoot/config.yaml is shallow-merged on top, and a
// handful of environment variables override both.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonfoot/internal/greenops"
)

// Output formats.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// Suggestion providers.
const (
	ProviderGemini = "gemini"
	ProviderStatic = "static"
)

// Defaults.
const (
	DefaultPrecision       = 2
	DefaultModel           = "gemini-pro"
	DefaultEndpoint        = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout         = 10 * time.Second
	DefaultCount           = 3
	DefaultCacheTTL        = 24 * time.Hour
	MaxSuggestionCount     = 10
	DefaultRegionalAverage = 12.0
	configFileName         = "config.yaml"
	outputTypeFile         = "file"
	outputTypeStderr       = "stderr"
)

// Environment variables.
const (
	EnvHome               = "CARBONFOOT_HOME"
	EnvProjectDir         = "CARBONFOOT_PROJECT_DIR"
	EnvOutputFormat       = "CARBONFOOT_OUTPUT_FORMAT"
	EnvLogLevel           = "CARBONFOOT_LOG_LEVEL"
	EnvLogFormat          = "CARBONFOOT_LOG_FORMAT"
	EnvSuggestionsAPIKey  = "CARBONFOOT_SUGGESTIONS_API_KEY"
	EnvGeminiAPIKey       = "GEMINI_API_KEY"
	EnvSuggestionsEnabled = "CARBONFOOT_SUGGESTIONS_ENABLED"
)

// Config is the full settings tree.
type Config struct {
	// Version is the config schema version.
	Version     string            `yaml:"version"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Suggestions SuggestionsConfig `yaml:"suggestions"`
	Comparison  ComparisonConfig  `yaml:"comparison"`
	Equivalents greenops.Factors  `yaml:"equivalents"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Precision     int    `yaml:"precision"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// SuggestionsConfig controls the suggestion provider.
type SuggestionsConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Provider string        `yaml:"provider"`
	Endpoint string        `yaml:"endpoint"`
	Model    string        `yaml:"model"`
	APIKey   string        `yaml:"api_key"`
	Timeout  time.Duration `yaml:"timeout"`
	Count    int           `yaml:"count"`

	// CacheTTL is how long generative answers are reused. Zero disables
	// the cache.
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// ComparisonConfig sets the regional baseline.
type ComparisonConfig struct {
	RegionalAverageTonnes float64 `yaml:"regional_average_tonnes"`
}

// Default returns a Config with every default and nothing loaded.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Output: OutputConfig{
			DefaultFormat: FormatTable,
			Precision:     DefaultPrecision,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "json",
		},
		Suggestions: SuggestionsConfig{
			Enabled:  true,
			Provider: ProviderGemini,
			Endpoint: DefaultEndpoint,
			Model:    DefaultModel,
			Timeout:  DefaultTimeout,
			Count:    DefaultCount,
			CacheTTL: DefaultCacheTTL,
		},
		Comparison:  ComparisonConfig{RegionalAverageTonnes: DefaultRegionalAverage},
		Equivalents: greenops.DefaultFactors(),
	}
}

// New returns the defaults overlaid with the global config file, if present,
// and environment overrides. Load errors are ignored so a broken file never
// prevents estimation; `config validate` reports them.
func New() *Config {
	cfg := Default()
	if path, err := ConfigPath(); err == nil {
		_ = cfg.Load(path)
	}
	cfg.ApplyEnv()
	return cfg
}

// ConfigPath returns the global config file path.
func ConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load decodes path onto c. Fields absent from the file keep their values.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Save writes c to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv applies environment overrides.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvGeminiAPIKey); v != "" {
		c.Suggestions.APIKey = v
	}
	if v := os.Getenv(EnvSuggestionsAPIKey); v != "" {
		c.Suggestions.APIKey = v
	}
	if v := os.Getenv(EnvSuggestionsEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Suggestions.Enabled = enabled
		}
	}
}

// Validate checks every section and joins all problems found.
func (c *Config) Validate() error {
	var errs []error

	if err := CheckVersion(c.Version); err != nil {
		errs = append(errs, err)
	}

	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON, FormatNDJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidOutputFormat, c.Output.DefaultFormat))
	}
	if c.Output.Precision < 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidPrecision, c.Output.Precision))
	}

	switch c.Suggestions.Provider {
	case ProviderGemini, ProviderStatic:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidProvider, c.Suggestions.Provider))
	}
	if c.Suggestions.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidTimeout, c.Suggestions.Timeout))
	}
	if c.Suggestions.Count < 1 || c.Suggestions.Count > MaxSuggestionCount {
		errs = append(errs, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidCount, c.Suggestions.Count, MaxSuggestionCount))
	}
	if c.Suggestions.CacheTTL < 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidCacheTTL, c.Suggestions.CacheTTL))
	}

	if c.Comparison.RegionalAverageTonnes < 0 {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidAverage, c.Comparison.RegionalAverageTonnes))
	}

	f := c.Equivalents
	for name, v := range map[string]float64{
		"tree_absorption_kg": f.TreeAbsorptionKg,
		"car_miles":          f.CarMiles,
		"led_bulbs":          f.LEDBulbs,
		"homes":              f.Homes,
		"smartphone_charges": f.SmartphoneCharges,
		"beef_burgers":       f.BeefBurgers,
		"plastic_bags":       f.PlasticBags,
	} {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: equivalents.%s=%v", ErrInvalidFactor, name, v))
		}
	}

	return errors.Join(errs...)
}

// Get returns the value at a dotted key such as suggestions.model. Section
// keys return their YAML.
func (c *Config) Get(key string) (string, error) {
	root, err := c.node()
	if err != nil {
		return "", err
	}
	n, err := lookup(root, key)
	if err != nil {
		return "", err
	}
	if n.Kind == yaml.ScalarNode {
		return n.Value, nil
	}
	out, err := yaml.Marshal(n)
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", key, err)
	}
	return strings.TrimRight(string(out), "\n"), nil
}

// Set parses value as the type of the dotted key and stores it. c is left
// unchanged on error.
func (c *Config) Set(key, value string) error {
	root, err := c.node()
	if err != nil {
		return err
	}
	n, err := lookup(root, key)
	if err != nil {
		return err
	}
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: %s is a section", ErrNotScalar, key)
	}

	n.Value = value
	n.Tag = ""
	n.Style = 0

	var updated Config
	if err = root.Decode(&updated); err != nil {
		return fmt.Errorf("%w: %s=%q: %w", ErrInvalidValue, key, value, err)
	}
	*c = updated
	return nil
}

// Keys returns every settable dotted key in file order.
func (c *Config) Keys() ([]string, error) {
	root, err := c.node()
	if err != nil {
		return nil, err
	}
	var keys []string
	var walk func(prefix string, n *yaml.Node)
	walk = func(prefix string, n *yaml.Node) {
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i].Value, n.Content[i+1]
			if prefix != "" {
				k = prefix + "." + k
			}
			if v.Kind == yaml.MappingNode {
				walk(k, v)
				continue
			}
			keys = append(keys, k)
		}
	}
	walk("", root)
	return keys, nil
}

func (c *Config) node() (*yaml.Node, error) {
	var doc yaml.Node
	if err := doc.Encode(c); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return &doc, nil
}

func lookup(root *yaml.Node, key string) (*yaml.Node, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", ErrUnknownKey)
	}
	n := root
	for _, part := range strings.Split(key, ".") {
		if n.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
		}
		var next *yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Value == part {
				next = n.Content[i+1]
				break
			}
		}
		if next == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
		}
		n = next
	}
	return n, nil
}
