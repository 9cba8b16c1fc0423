package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rshade/carbonfoot/internal/config"
)

// validOutputFormats lists the accepted --output values.
//
//nolint:gochecknoglobals // Immutable format list.
var validOutputFormats = []string{config.FormatTable, config.FormatJSON, config.FormatNDJSON}

// validateOutputFormat rejects unknown --output values.
func validateOutputFormat(format string) error {
	for _, f := range validOutputFormats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (want one of %v)", config.ErrInvalidOutputFormat, format, validOutputFormats)
}

// renderJSON writes v as indented JSON.
func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderNDJSON writes v as one compact JSON line.
func renderNDJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
