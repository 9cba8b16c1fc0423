package greenops

// badgeLadder is ordered by ascending threshold. The last entry doubles as the
// ceiling for totals above every threshold.
//
//nolint:gochecknoglobals // Fixed badge table.
var badgeLadder = []Badge{
	{
		Tier:        TierPlanetGuardian,
		Title:       TierPlanetGuardian.String(),
		Icon:        "🌍",
		Level:       "Master",
		Description: "Your carbon footprint is impressively low!",
		Threshold:   5,
	},
	{
		Tier:        TierConsciousConsumer,
		Title:       TierConsciousConsumer.String(),
		Icon:        "🍃",
		Level:       "Advanced",
		Description: "You're making great progress in reducing emissions!",
		Threshold:   10,
	},
	{
		Tier:        TierEcoStarter,
		Title:       TierEcoStarter.String(),
		Icon:        "🌱",
		Level:       "Beginner",
		Description: "You're taking the first steps toward sustainability!",
		Threshold:   15,
	},
}

// DeriveBadge returns the first badge whose threshold is at or above total.
// Totals above every threshold (and NaN) get the highest-threshold badge;
// there is no unranked outcome.
func DeriveBadge(total float64) Badge {
	for _, b := range badgeLadder {
		if total <= b.Threshold {
			return b
		}
	}
	return badgeLadder[len(badgeLadder)-1]
}

// Badges returns the full ladder in ascending threshold order.
func Badges() []Badge {
	out := make([]Badge, len(badgeLadder))
	copy(out, badgeLadder)
	return out
}

// Rank returns the 1-based position of the badge on the ladder, 1 being the
// best tier.
func (b Badge) Rank() int {
	return int(b.Tier) + 1
}
