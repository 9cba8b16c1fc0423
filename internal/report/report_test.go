package report

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonfoot/internal/footprint"
	"github.com/rshade/carbonfoot/internal/greenops"
	"github.com/rshade/carbonfoot/internal/suggest"
)

func referenceProfile() footprint.Profile {
	return footprint.Profile{
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

func TestBuild_ReferenceProfile(t *testing.T) {
	r := Build(context.Background(), referenceProfile(), Options{})

	assert.InDelta(t, 730.0, r.Breakdown.Transportation, 1e-9)
	assert.InDelta(t, 637.5, r.Breakdown.Household, 1e-9)
	assert.InDelta(t, 662.475, r.Breakdown.Food, 1e-9)
	assert.InDelta(t, 144.0, r.Breakdown.Waste, 1e-9)
	assert.InDelta(t, 400.0, r.Breakdown.Lifestyle, 1e-9)
	assert.InDelta(t, 2573.975, r.Breakdown.Total, 1e-9)

	assert.Equal(t, greenops.TierEcoStarter, r.Badge.Tier)
	assert.Empty(t, r.Achievements.Achievements)
	assert.InDelta(t, 100-2573.975*5, r.Achievements.Score, 1e-9)
	assert.InDelta(t, greenops.DeriveEquivalents(r.Breakdown.Total).Trees, r.Equivalents.Trees, 1e-9)
	assert.Nil(t, r.Suggestions, "no suggester configured")

	assert.InDelta(t, DefaultRegionalAverage, r.Comparison.Average, 0)
	assert.InDelta(t, 2573.975-12, r.Comparison.Delta, 1e-9)
}

func TestBuild_WithSuggester(t *testing.T) {
	failing := suggest.SuggesterFunc(func(context.Context, footprint.Profile, footprint.Breakdown) ([]string, error) {
		return nil, suggest.ErrUpstreamStatus
	})

	r := Build(context.Background(), referenceProfile(), Options{Suggester: failing})
	assert.Equal(t, suggest.Defaults(), r.Suggestions)

	r = Build(context.Background(), referenceProfile(), Options{Suggester: suggest.Static{}})
	assert.Len(t, r.Suggestions, suggest.DefaultCount)
}

func TestBuild_SuggesterSeesEstimate(t *testing.T) {
	var seen footprint.Breakdown
	spy := suggest.SuggesterFunc(func(_ context.Context, _ footprint.Profile, b footprint.Breakdown) ([]string, error) {
		seen = b
		return []string{"ok"}, nil
	})

	r := Build(context.Background(), referenceProfile(), Options{Suggester: spy})
	assert.Equal(t, r.Breakdown, seen)
	assert.Equal(t, []string{"ok"}, r.Suggestions)
}

func TestBuild_CustomFactors(t *testing.T) {
	f := greenops.DefaultFactors()
	f.CarMiles = 1

	r := Build(context.Background(), footprint.Profile{}, Options{Factors: &f, RegionalAverage: 20})
	assert.InDelta(t, r.Breakdown.Total, r.Equivalents.CarMiles, 1e-9)
	assert.InDelta(t, 20.0, r.Comparison.Average, 0)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name    string
		total   float64
		average float64
		want    Comparison
	}{
		{name: "below average", total: 6, average: 12, want: Comparison{User: 6, Average: 12, Delta: -6, Ratio: 0.5}},
		{name: "above average", total: 24, average: 12, want: Comparison{User: 24, Average: 12, Delta: 12, Ratio: 2}},
		{name: "zero average defaults", total: 12, average: 0, want: Comparison{User: 12, Average: 12, Delta: 0, Ratio: 1}},
		{name: "negative average defaults", total: 0, average: -3, want: Comparison{User: 0, Average: 12, Delta: -12, Ratio: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.total, tt.average))
		})
	}
}

func TestShares(t *testing.T) {
	b := footprint.Breakdown{Transportation: 25, Household: 50, Food: 10, Waste: 10, Lifestyle: 5, Total: 100}
	got := Shares(b)
	require.Len(t, got, 5)

	assert.Equal(t, footprint.CategoryHousehold, got[0].Category)
	assert.Equal(t, footprint.CategoryTransportation, got[1].Category)
	assert.Equal(t, footprint.CategoryLifestyle, got[4].Category)
	assert.InDelta(t, 50.0, got[0].Percent, 1e-9)
	assert.InDelta(t, 25.0, got[1].Percent, 1e-9)

	sum := 0.0
	for _, s := range got {
		sum += s.Percent
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestShares_ZeroTotal(t *testing.T) {
	for _, s := range Shares(footprint.Breakdown{}) {
		assert.Zero(t, s.Percent, s.Name)
	}
}

func TestReport_JSON(t *testing.T) {
	r := Build(context.Background(), referenceProfile(), Options{Suggester: suggest.Static{}})
	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"profile", "emissions", "impact_equivalents", "badge", "achievements", "suggestions", "comparison", "shares"} {
		assert.Contains(t, decoded, key)
	}

	emissions, ok := decoded["emissions"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 2573.975, emissions["total"], 1e-9)
}
