// Package suggest produces short, actionable suggestions for reducing a
// carbon footprint.
//
// A Suggester is an injected capability: the estimator never depends on it.
// Static always succeeds; Generative asks a generative-language API and is
// normally wrapped with WithFallback so any failure degrades to the static
// list.
package suggest

import (
	"context"

	"github.com/rshade/carbonfoot/internal/footprint"
)

// DefaultCount is the number of suggestions a report carries.
const DefaultCount = 3

// Suggester returns suggestion strings for a profile and its estimate.
type Suggester interface {
	Suggest(ctx context.Context, p footprint.Profile, b footprint.Breakdown) ([]string, error)
}

// SuggesterFunc adapts a function to the Suggester interface.
type SuggesterFunc func(ctx context.Context, p footprint.Profile, b footprint.Breakdown) ([]string, error)

// Suggest calls f.
func (f SuggesterFunc) Suggest(ctx context.Context, p footprint.Profile, b footprint.Breakdown) ([]string, error) {
	return f(ctx, p, b)
}

//nolint:gochecknoglobals // Immutable fallback list.
var defaultSuggestions = []string{
	"Switch to LED bulbs and smart power strips - Can save 0.15 metric tons CO2/year",
	"Reduce meat consumption by having 2 vegetarian days per week - Can save 0.3 metric tons CO2/year",
	"Use public transport or carpool twice a week - Can save 0.5 metric tons CO2/year",
}

// Defaults returns a copy of the static fallback list.
func Defaults() []string {
	out := make([]string, len(defaultSuggestions))
	copy(out, defaultSuggestions)
	return out
}

// defaultAt returns the fallback suggestion for position i, repeating the
// last entry once the list is exhausted.
func defaultAt(i int) string {
	if i < 0 {
		i = 0
	}
	return defaultSuggestions[min(i, len(defaultSuggestions)-1)]
}

// Static is a Suggester that always returns the fallback list.
type Static struct{}

// Suggest returns the fallback list. It never fails.
func (Static) Suggest(_ context.Context, _ footprint.Profile, _ footprint.Breakdown) ([]string, error) {
	return Defaults(), nil
}

// Fallback wraps a Suggester and returns the static list when it fails.
type Fallback struct {
	next Suggester
}

// WithFallback wraps s so that Suggest never returns an error. A nil s
// behaves like Static.
func WithFallback(s Suggester) *Fallback {
	return &Fallback{next: s}
}

// Suggest calls the wrapped Suggester and logs and discards any failure.
func (f *Fallback) Suggest(ctx context.Context, p footprint.Profile, b footprint.Breakdown) ([]string, error) {
	if f == nil || f.next == nil {
		return Defaults(), nil
	}

	out, err := f.next.Suggest(ctx, p, b)
	if err != nil {
		log := componentLogger(ctx)
		log.Warn().Ctx(ctx).Err(err).Msg("suggestion provider failed, using static suggestions")
		return Defaults(), nil
	}
	if len(out) == 0 {
		return Defaults(), nil
	}
	return out, nil
}
