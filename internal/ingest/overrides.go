package ingest

import (
	"fmt"
	"strings"

	"github.com/rshade/carbonfoot/internal/footprint"
)

// Limits on --set overrides.
const (
	maxOverrides        = 100
	maxOverrideKeyLen   = 64
	maxOverrideValueLen = 256
	keyValueParts       = 2
)

// Override is one parsed key=value pair.
type Override struct {
	Key   string
	Value string
}

// ParseOverrides parses key=value strings, preserving their order.
func ParseOverrides(items []string) ([]Override, error) {
	if len(items) > maxOverrides {
		return nil, fmt.Errorf("%w: too many overrides: %d (max %d)", ErrInvalidOverride, len(items), maxOverrides)
	}

	out := make([]Override, 0, len(items))
	for _, item := range items {
		parts := strings.SplitN(item, "=", keyValueParts)
		if len(parts) != keyValueParts {
			return nil, fmt.Errorf("%w: %q: expected key=value", ErrInvalidOverride, item)
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" {
			return nil, fmt.Errorf("%w: key cannot be empty in %q", ErrInvalidOverride, item)
		}
		if len(key) > maxOverrideKeyLen {
			return nil, fmt.Errorf("%w: key too long: %d bytes (max %d)", ErrInvalidOverride, len(key), maxOverrideKeyLen)
		}
		if len(value) > maxOverrideValueLen {
			return nil, fmt.Errorf("%w: value too large for key %q: %d bytes (max %d)",
				ErrInvalidOverride, key, len(value), maxOverrideValueLen)
		}
		out = append(out, Override{Key: key, Value: value})
	}
	return out, nil
}

// ApplyOverrides parses items and applies them to a copy of p in order. A
// later override of the same key wins.
func ApplyOverrides(p footprint.Profile, items []string) (footprint.Profile, error) {
	overrides, err := ParseOverrides(items)
	if err != nil {
		return p, err
	}

	out := p
	for _, o := range overrides {
		out, err = Apply(out, o.Key, o.Value)
		if err != nil {
			return p, err
		}
	}
	return out, nil
}
