// Package ingest loads lifestyle profiles from YAML or JSON files, NDJSON
// batches and form-style key=value overrides.
package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonfoot/internal/footprint"
	"github.com/rshade/carbonfoot/internal/logging"
)

// Format is a profile serialization.
type Format string

// Supported profile formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q (want .yaml, .yml or .json)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadProfile reads a profile file.
func LoadProfile(path string) (footprint.Profile, error) {
	return LoadProfileWithContext(context.Background(), path)
}

// LoadProfileWithContext reads a profile file with logging context.
func LoadProfileWithContext(ctx context.Context, path string) (footprint.Profile, error) {
	log := logging.FromContext(ctx)

	format, err := FormatFromPath(path)
	if err != nil {
		return footprint.Profile{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return footprint.Profile{}, fmt.Errorf("reading profile: %w", err)
	}

	log.Debug().Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "load_profile").
		Str("path", path).
		Int("data_size_bytes", len(data)).
		Msg("loading profile")

	p, err := ParseProfile(data, format)
	if err != nil {
		return footprint.Profile{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return p, nil
}

// ParseProfile decodes a profile. Unknown keys are rejected.
func ParseProfile(data []byte, format Format) (footprint.Profile, error) {
	var p footprint.Profile
	if len(bytes.TrimSpace(data)) == 0 {
		return p, ErrEmptyInput
	}

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return footprint.Profile{}, fmt.Errorf("decoding JSON profile: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			if errors.Is(err, io.EOF) {
				return footprint.Profile{}, ErrEmptyInput
			}
			return footprint.Profile{}, fmt.Errorf("decoding YAML profile: %w", err)
		}
	default:
		return footprint.Profile{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return p, nil
}

// MarshalProfile encodes a profile in the given format.
func MarshalProfile(p footprint.Profile, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(p, "", "  ")
	case FormatYAML:
		return yaml.Marshal(p)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
