package ingest

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for profile loading. Compare with errors.Is.
var (
	// ErrUnknownField indicates an override key that is not a profile field.
	ErrUnknownField = constError("unknown profile field")

	// ErrInvalidValue indicates a numeric field whose value does not parse.
	ErrInvalidValue = constError("invalid profile value")

	// ErrEmptyInput indicates a profile file or line with no content.
	ErrEmptyInput = constError("empty profile input")

	// ErrUnsupportedFormat indicates a file extension that is neither YAML nor JSON.
	ErrUnsupportedFormat = constError("unsupported profile format")

	// ErrInvalidOverride indicates a malformed key=value override.
	ErrInvalidOverride = constError("invalid override")
)
