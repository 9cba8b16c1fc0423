package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonfoot/internal/footprint"
)

func TestDeriveBadge(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		want  Tier
		title string
		level string
	}{
		{name: "zero", total: 0, want: TierPlanetGuardian, title: "Planet Guardian", level: "Master"},
		{name: "well below first threshold", total: 4, want: TierPlanetGuardian, title: "Planet Guardian", level: "Master"},
		{name: "first threshold is inclusive", total: 5, want: TierPlanetGuardian, title: "Planet Guardian", level: "Master"},
		{name: "just above first threshold", total: 5.0001, want: TierConsciousConsumer, title: "Conscious Consumer", level: "Advanced"},
		{name: "middle tier", total: 7, want: TierConsciousConsumer, title: "Conscious Consumer", level: "Advanced"},
		{name: "second threshold is inclusive", total: 10, want: TierConsciousConsumer, title: "Conscious Consumer", level: "Advanced"},
		{name: "top tier", total: 12, want: TierEcoStarter, title: "Eco Starter", level: "Beginner"},
		{name: "third threshold is inclusive", total: 15, want: TierEcoStarter, title: "Eco Starter", level: "Beginner"},
		{name: "ceiling fallback", total: 20, want: TierEcoStarter, title: "Eco Starter", level: "Beginner"},
		{name: "reference total falls back", total: 2573.975, want: TierEcoStarter, title: "Eco Starter", level: "Beginner"},
		{name: "NaN falls back", total: math.NaN(), want: TierEcoStarter, title: "Eco Starter", level: "Beginner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveBadge(tt.total)
			assert.Equal(t, tt.want, got.Tier)
			assert.Equal(t, tt.title, got.Title)
			assert.Equal(t, tt.level, got.Level)
			assert.NotEmpty(t, got.Description)
			assert.NotEmpty(t, got.Icon)
		})
	}
}

func TestDeriveBadge_Monotonic(t *testing.T) {
	prev := DeriveBadge(0).Tier
	for total := 0.0; total <= 30; total += 0.25 {
		tier := DeriveBadge(total).Tier
		assert.GreaterOrEqual(t, tier, prev, "badge at %v is better than at a lower total", total)
		prev = tier
	}
}

func TestBadges_ReturnsCopy(t *testing.T) {
	ladder := Badges()
	require.Len(t, ladder, 3)
	for i := 1; i < len(ladder); i++ {
		assert.Less(t, ladder[i-1].Threshold, ladder[i].Threshold)
	}

	ladder[0].Title = "changed"
	assert.Equal(t, "Planet Guardian", DeriveBadge(1).Title)
}

func TestDeriveAchievements(t *testing.T) {
	tests := []struct {
		name      string
		breakdown footprint.Breakdown
		wantIDs   []string
		wantScore float64
	}{
		{
			name:      "all three fire",
			breakdown: footprint.Breakdown{Transportation: 1, Household: 2, Food: 1, Total: 4},
			wantIDs:   []string{AchievementLowCarbonCommuter, AchievementEnergySaverPro, AchievementEcoDietChampion},
			wantScore: 80,
		},
		{
			name:      "thresholds are strict",
			breakdown: footprint.Breakdown{Transportation: 2, Household: 3, Food: 1.5, Total: 6.5},
			wantIDs:   []string{},
			wantScore: 67.5,
		},
		{
			name:      "only household",
			breakdown: footprint.Breakdown{Transportation: 5, Household: 2.99, Food: 4, Total: 11.99},
			wantIDs:   []string{AchievementEnergySaverPro},
			wantScore: 100 - 11.99*5,
		},
		{
			name:      "commuter and diet",
			breakdown: footprint.Breakdown{Transportation: 0, Household: 10, Food: 0.5, Total: 10.5},
			wantIDs:   []string{AchievementLowCarbonCommuter, AchievementEcoDietChampion},
			wantScore: 47.5,
		},
		{
			name:      "score goes negative without clamping",
			breakdown: footprint.Breakdown{Transportation: 730, Household: 637.5, Food: 662.475, Waste: 144, Lifestyle: 400, Total: 2573.975},
			wantIDs:   []string{},
			wantScore: 100 - 2573.975*5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveAchievements(tt.breakdown)
			assert.InDelta(t, tt.wantScore, got.Score, 1e-9)

			ids := make([]string, 0, len(got.Achievements))
			for _, a := range got.Achievements {
				ids = append(ids, a.ID)
				assert.True(t, got.Has(a.ID))
			}
			assert.ElementsMatch(t, tt.wantIDs, ids)
		})
	}
}

func TestDeriveAchievements_FromEstimate(t *testing.T) {
	p := footprint.Profile{Transport: footprint.TransportProfile{Mode: "wfh"}}
	got := DeriveAchievements(footprint.Estimate(p))

	assert.True(t, got.Has(AchievementLowCarbonCommuter))
	assert.True(t, got.Has(AchievementEnergySaverPro))
	assert.False(t, got.Has(AchievementEcoDietChampion))
	assert.NotNil(t, got.Achievements)
}

func TestBadge_Rank(t *testing.T) {
	assert.Equal(t, 1, DeriveBadge(1).Rank())
	assert.Equal(t, 2, DeriveBadge(8).Rank())
	assert.Equal(t, 3, DeriveBadge(100).Rank())
}
