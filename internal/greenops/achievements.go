package greenops

import "github.com/rshade/carbonfoot/internal/footprint"

type achievementRule struct {
	achievement Achievement
	category    footprint.Category
	below       float64
}

//nolint:gochecknoglobals // Fixed achievement table.
var achievementRules = []achievementRule{
	{
		achievement: Achievement{
			ID:          AchievementLowCarbonCommuter,
			Icon:        "🚲",
			Title:       "Low-Carbon Commuter",
			Description: "Your transportation emissions are admirably low!",
		},
		category: footprint.CategoryTransportation,
		below:    2,
	},
	{
		achievement: Achievement{
			ID:          AchievementEnergySaverPro,
			Icon:        "💡",
			Title:       "Energy Saver Pro",
			Description: "You're a master at managing household energy!",
		},
		category: footprint.CategoryHousehold,
		below:    3,
	},
	{
		achievement: Achievement{
			ID:          AchievementEcoDietChampion,
			Icon:        "🥗",
			Title:       "Eco Diet Champion",
			Description: "Your food choices are planet-friendly!",
		},
		category: footprint.CategoryFood,
		below:    1.5,
	},
}

// DeriveAchievements scores a breakdown and collects every achievement whose
// category value is strictly below its threshold.
func DeriveAchievements(b footprint.Breakdown) AchievementSet {
	set := AchievementSet{
		Score:        MaxScore - b.Total*ScorePenaltyPerUnit,
		Achievements: []Achievement{},
	}

	for _, rule := range achievementRules {
		if b.Value(rule.category) < rule.below {
			set.Achievements = append(set.Achievements, rule.achievement)
		}
	}

	return set
}
