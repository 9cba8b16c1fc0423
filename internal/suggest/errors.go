package suggest

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by the generative client. All of them are
// absorbed by WithFallback.
var (
	// ErrNoAPIKey indicates the generative provider has no API key configured.
	ErrNoAPIKey = constError("suggestion provider API key not configured")

	// ErrUpstreamStatus indicates the provider answered with a non-2xx status.
	ErrUpstreamStatus = constError("suggestion provider returned an error status")

	// ErrEmptyResponse indicates the provider answered without any text.
	ErrEmptyResponse = constError("suggestion provider returned no text")
)
