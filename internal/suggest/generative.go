package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/carbonfoot/internal/footprint"
	"github.com/rshade/carbonfoot/internal/logging"
)

// Defaults for the generative provider.
const (
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel    = "gemini-pro"
	DefaultTimeout  = 10 * time.Second

	// maxResponseBytes caps how much of a provider response is read.
	maxResponseBytes = 1 << 20
)

// GenerativeConfig configures a Generative suggester.
type GenerativeConfig struct {
	// Endpoint is the API base URL, without the /models path.
	Endpoint string

	// Model is the model name, e.g. gemini-pro.
	Model string

	// APIKey is sent in the x-goog-api-key header.
	APIKey string

	// Timeout bounds each request. Zero uses DefaultTimeout.
	Timeout time.Duration

	// Count is the number of suggestions to return. Zero uses DefaultCount.
	Count int

	// HTTPClient overrides the client used for requests.
	HTTPClient *http.Client
}

// Generative asks a Gemini-compatible generateContent API for suggestions.
type Generative struct {
	cfg    GenerativeConfig
	client *http.Client
}

// NewGenerative returns a Generative suggester with defaults filled in.
func NewGenerative(cfg GenerativeConfig) *Generative {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Count <= 0 {
		cfg.Count = DefaultCount
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	return &Generative{cfg: cfg, client: client}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Suggest sends the prompt and parses the reply. Errors are not masked; wrap
// with WithFallback to degrade to the static list.
func (g *Generative) Suggest(ctx context.Context, p footprint.Profile, b footprint.Breakdown) ([]string, error) {
	if g.cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	log := componentLogger(ctx)
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: BuildPrompt(p, b, g.cfg.Count)}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	endpoint := strings.TrimRight(g.cfg.Endpoint, "/") + "/models/" + url.PathEscape(g.cfg.Model) + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.cfg.APIKey)

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling suggestion provider: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	log.Debug().Ctx(ctx).
		Str("model", g.cfg.Model).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("suggestion provider responded")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	var decoded generateResponse
	if err = json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	text := decoded.text()
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResponse
	}
	return ParseSuggestions(text, g.cfg.Count), nil
}

func (r generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

func componentLogger(ctx context.Context) zerolog.Logger {
	return logging.ComponentLogger(*logging.FromContext(ctx), "suggest")
}
