package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonfoot/internal/engine/batch"
	"github.com/rshade/carbonfoot/internal/footprint"
	"github.com/rshade/carbonfoot/internal/greenops"
	"github.com/rshade/carbonfoot/internal/report"
	"github.com/rshade/carbonfoot/internal/suggest"
)

func referenceProfile() footprint.Profile {
	return footprint.Profile{
		About: footprint.AboutProfile{Name: "Asha"},
		Transport: footprint.TransportProfile{
			Mode: "car", VehicleFuel: "petrol", DailyTravelKm: 10,
		},
		Household: footprint.HouseholdProfile{
			MonthlyElectricity: 2000, Members: 4, ACUsage: "no", HomeType: "apartment1",
		},
		Food: footprint.FoodProfile{
			DietType: "vegetarian", RedMeat: "never", Dairy: "rarely", FoodWaste: "rarely",
		},
		Waste: footprint.WasteProfile{
			WeeklyWaste: "medium", Recycling: "some", Segregation: "yes",
		},
		Lifestyle: footprint.LifestyleProfile{
			YearlyClothes: "moderate", Electronics: "low", OnlineShopping: "monthly",
		},
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1,234.50 "+UnitLabel, FormatAmount(1234.5, 2))
	assert.Equal(t, "12 "+UnitLabel, FormatAmount(12.2, 0))
}

func TestRenderReport(t *testing.T) {
	r := report.Build(context.Background(), referenceProfile(), report.Options{Suggester: suggest.Static{}})

	t.Run("renders every section", func(t *testing.T) {
		out := RenderReport(r, 2, 0)

		for _, want := range []string{
			"CARBON FOOTPRINT", "Asha",
			"2,573.98 " + UnitLabel,
			"Eco Starter", "Beginner",
			"BREAKDOWN", "Household", "Transportation", "Food", "Waste", "Lifestyle",
			"637.50", "730.00", "662.48", "144.00", "400.00",
			"COMPARISON", "12.00 " + UnitLabel,
			"IMPACT EQUIVALENTS", "trees needed to absorb it",
			"ACHIEVEMENTS", "No achievements yet",
			"SUGGESTIONS", "1. ", "LED",
		} {
			assert.Contains(t, out, want)
		}
	})

	t.Run("breakdown follows share order", func(t *testing.T) {
		out := RenderReport(r, 2, 0)
		household := strings.Index(out, "Household")
		transport := strings.Index(out, "Transportation")
		lifestyle := strings.Index(out, "Lifestyle")
		assert.Less(t, household, transport)
		assert.Less(t, transport, lifestyle)
	})

	t.Run("omits suggestions when none", func(t *testing.T) {
		plain := report.Build(context.Background(), referenceProfile(), report.Options{})
		assert.NotContains(t, RenderReport(plain, 2, 0), "SUGGESTIONS")
	})

	t.Run("lists achievements for a low footprint", func(t *testing.T) {
		low := report.Build(context.Background(), footprint.Profile{}, report.Options{})
		low.Achievements = greenops.AchievementSet{
			Score:        90,
			Achievements: []greenops.Achievement{{ID: "green_commuter", Icon: "🚲", Title: "Green Commuter", Description: "low transport"}},
		}
		out := RenderReport(low, 1, 0)
		assert.Contains(t, out, "Green Commuter")
		assert.Contains(t, out, "score 90.0")
		assert.NotContains(t, out, "No achievements yet")
	})

	t.Run("respects width", func(t *testing.T) {
		out := RenderReport(r, 2, 120)
		assert.NotEmpty(t, out)
	})
}

func TestRenderBadge(t *testing.T) {
	for _, b := range greenops.Badges() {
		out := RenderBadge(b)
		assert.Contains(t, out, b.Title)
		assert.Contains(t, out, b.Level)
	}
}

func TestRenderShareBar(t *testing.T) {
	tests := []struct {
		percent float64
		filled  int
	}{
		{0, 0},
		{50, 10},
		{100, 20},
		{250, 20},
		{-5, 0},
	}
	for _, tt := range tests {
		out := RenderShareBar(tt.percent)
		assert.Equal(t, tt.filled, strings.Count(out, "█"), "percent %v", tt.percent)
		assert.Equal(t, shareBarWidth-tt.filled, strings.Count(out, "░"), "percent %v", tt.percent)
	}
}

func TestRenderBatchSummary(t *testing.T) {
	t.Run("with results", func(t *testing.T) {
		s := batch.Summary{
			Profiles: 3,
			Failed:   1,
			Mean:     2000,
			Min:      4,
			Max:      5000,
			ByBadge:  map[string]int{"Eco Starter": 2, "Planet Guardian": 1},
		}
		out := RenderBatchSummary(s, 2, 80)

		assert.Contains(t, out, "BATCH SUMMARY")
		assert.Contains(t, out, "Failed")
		assert.Contains(t, out, "2,000.00 "+UnitLabel)
		assert.Contains(t, out, "4.00 - 5,000.00")
		assert.Less(t, strings.Index(out, "Eco Starter"), strings.Index(out, "Planet Guardian"))
	})

	t.Run("all failed", func(t *testing.T) {
		out := RenderBatchSummary(batch.Summary{Failed: 2, ByBadge: map[string]int{}}, 2, 0)
		assert.NotContains(t, out, "Mean total")
		assert.NotContains(t, out, "BADGES")
	})
}

func TestRenderBatchResults(t *testing.T) {
	r := report.Build(context.Background(), referenceProfile(), report.Options{})
	results := []batch.Result{
		{Line: 1, Report: &r},
		{Line: 2, Err: errors.New("line 2: decoding JSON profile: unexpected EOF")},
	}

	out := RenderBatchResults(results, 2)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 3, "header is a single line with no rule below it")
	assert.Contains(t, lines[0], "LINE")
	assert.NotContains(t, out, "─")
	assert.Contains(t, lines[1], "Asha")
	assert.Contains(t, lines[1], "2,573.98")
	assert.Contains(t, lines[1], r.Badge.Title)
	assert.Contains(t, lines[2], "unexpected EOF")
}
