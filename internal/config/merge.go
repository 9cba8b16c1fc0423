package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonfoot/internal/greenops"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyVersion     = "version"
	keyOutput      = "output"
	keyLogging     = "logging"
	keySuggestions = "suggestions"
	keyComparison  = "comparison"
	keyEquivalents = "equivalents"
)

// knownTopLevelKeys lists the YAML keys that correspond to Config fields.
// Keys not in this list are ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keyVersion:     true,
	keyOutput:      true,
	keyLogging:     true,
	keySuggestions: true,
	keyComparison:  true,
	keyEquivalents: true,
}

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// target. A key present in the overlay replaces the whole section; absent
// keys are left unchanged.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	// Build on a copy so a bad section leaves target untouched.
	merged := *target
	for key, node := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}
		if err = unmarshalSection(&merged, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}

	*target = merged
	return nil
}

// unmarshalSection decodes node into a fresh zero value for the section
// named key, so the section is replaced rather than merged. The equivalents
// section starts from greenops.DefaultFactors so omitted factors keep their
// standard values.
func unmarshalSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyVersion:
		var v string
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Version = v
	case keyOutput:
		var v OutputConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Output = v
	case keyLogging:
		var v LoggingConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	case keySuggestions:
		var v SuggestionsConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Suggestions = v
	case keyComparison:
		var v ComparisonConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Comparison = v
	case keyEquivalents:
		v := greenops.DefaultFactors()
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Equivalents = v
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
