// Package report assembles everything shown for one profile: the estimate,
// its derived equivalents, badge and achievements, suggestions, a regional
// comparison and per-category shares.
package report

import (
	"context"

	"github.com/rshade/carbonfoot/internal/footprint"
	"github.com/rshade/carbonfoot/internal/greenops"
	"github.com/rshade/carbonfoot/internal/suggest"
)

// DefaultRegionalAverage is the per-person regional total compared against.
const DefaultRegionalAverage = 12.0

// Options controls report assembly. The zero value is usable.
type Options struct {
	// Suggester supplies suggestions. Nil means no suggestions are fetched.
	// It is always wrapped with suggest.WithFallback.
	Suggester suggest.Suggester

	// Factors overrides the equivalency factors. Nil uses defaults.
	Factors *greenops.Factors

	// RegionalAverage is the comparison baseline. Zero or negative uses
	// DefaultRegionalAverage.
	RegionalAverage float64
}

// Comparison sets the user's total against a regional average.
type Comparison struct {
	User    float64 `json:"user"`
	Average float64 `json:"average"`

	// Delta is User minus Average.
	Delta float64 `json:"delta"`

	// Ratio is User divided by Average.
	Ratio float64 `json:"ratio"`
}

// Share is one category's fraction of the total, in percent.
type Share struct {
	Category footprint.Category `json:"-"`
	Name     string             `json:"category"`
	Value    float64            `json:"value"`
	Percent  float64            `json:"percent"`
}

// Report is the full result for one profile.
type Report struct {
	Profile      footprint.Profile       `json:"profile"`
	Breakdown    footprint.Breakdown     `json:"emissions"`
	Equivalents  greenops.Equivalents    `json:"impact_equivalents"`
	Badge        greenops.Badge          `json:"badge"`
	Achievements greenops.AchievementSet `json:"achievements"`
	Suggestions  []string                `json:"suggestions,omitempty"`
	Comparison   Comparison              `json:"comparison"`
	Shares       []Share                 `json:"shares"`
}

// Build estimates p and derives the rest of the report. It never fails:
// suggestion errors degrade to the static list.
func Build(ctx context.Context, p footprint.Profile, opts Options) Report {
	b := footprint.Estimate(p)

	factors := greenops.DefaultFactors()
	if opts.Factors != nil {
		factors = *opts.Factors
	}

	r := Report{
		Profile:      p,
		Breakdown:    b,
		Equivalents:  greenops.DeriveEquivalentsWith(b.Total, factors),
		Badge:        greenops.DeriveBadge(b.Total),
		Achievements: greenops.DeriveAchievements(b),
		Comparison:   Compare(b.Total, opts.RegionalAverage),
		Shares:       Shares(b),
	}

	if opts.Suggester != nil {
		// Fallback never returns an error.
		r.Suggestions, _ = suggest.WithFallback(opts.Suggester).Suggest(ctx, p, b)
	}

	return r
}

// Compare returns the comparison of total against average.
func Compare(total, average float64) Comparison {
	if average <= 0 {
		average = DefaultRegionalAverage
	}
	return Comparison{
		User:    total,
		Average: average,
		Delta:   total - average,
		Ratio:   total / average,
	}
}

// shareOrder is the display order of the category pie.
//
//nolint:gochecknoglobals // Fixed display order.
var shareOrder = []footprint.Category{
	footprint.CategoryHousehold,
	footprint.CategoryTransportation,
	footprint.CategoryFood,
	footprint.CategoryWaste,
	footprint.CategoryLifestyle,
}

// Shares returns each category's percentage of the total. A zero total
// yields zero percentages.
func Shares(b footprint.Breakdown) []Share {
	out := make([]Share, 0, len(shareOrder))
	for _, c := range shareOrder {
		v := b.Value(c)
		pct := 0.0
		if b.Total > 0 {
			pct = v / b.Total * 100
		}
		out = append(out, Share{Category: c, Name: c.String(), Value: v, Percent: pct})
	}
	return out
}
