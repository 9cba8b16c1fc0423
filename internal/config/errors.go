package config

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Validation and key errors. Compare with errors.Is.
var (
	ErrInvalidOutputFormat = constError("invalid output format")
	ErrInvalidPrecision    = constError("precision must not be negative")
	ErrInvalidProvider     = constError("invalid suggestion provider")
	ErrInvalidTimeout      = constError("suggestion timeout must be positive")
	ErrInvalidCount        = constError("invalid suggestion count")
	ErrInvalidCacheTTL     = constError("suggestion cache TTL must not be negative")
	ErrInvalidAverage      = constError("regional average must not be negative")
	ErrInvalidFactor       = constError("equivalency factor must be positive")
	ErrUnsupportedVersion  = constError("unsupported config version")
	ErrUnknownKey          = constError("unknown config key")
	ErrNotScalar           = constError("config key is not a single value")
	ErrInvalidValue        = constError("invalid config value")
)
