// Package greenops turns an emissions total into relatable comparisons,
// a badge tier and a set of achievements.
//
// Every function in this package is pure. Equivalents are linear scalings of
// the total using illustrative factors; they are not physical constants and
// may be overridden through Factors.
package greenops

import "fmt"

// EquivalencyType identifies one physical comparison.
type EquivalencyType int

const (
	// EquivalencyTrees is the number of trees needed to absorb the total in a year.
	EquivalencyTrees EquivalencyType = iota

	// EquivalencyCarMiles is the distance driven in an average passenger car.
	EquivalencyCarMiles

	// EquivalencyLEDBulbs is the number of LED bulbs lit for a year.
	EquivalencyLEDBulbs

	// EquivalencyHomes is the number of average homes powered for a year.
	EquivalencyHomes

	// EquivalencySmartphoneCharges is the number of full smartphone charges.
	EquivalencySmartphoneCharges

	// EquivalencyBeefBurgers is the number of beef burgers produced.
	EquivalencyBeefBurgers

	// EquivalencyPlasticBags is the number of plastic bags produced.
	EquivalencyPlasticBags
)

// String returns the snake_case key used in JSON output.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyTrees:
		return "trees"
	case EquivalencyCarMiles:
		return "car_miles"
	case EquivalencyLEDBulbs:
		return "led_bulbs"
	case EquivalencyHomes:
		return "homes"
	case EquivalencySmartphoneCharges:
		return "smartphone_charges"
	case EquivalencyBeefBurgers:
		return "beef_burgers"
	case EquivalencyPlasticBags:
		return "plastic_bags"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", int(e))
	}
}

// Equivalents holds every comparison for one total. Values are unrounded.
type Equivalents struct {
	Trees             float64 `json:"trees"`
	CarMiles          float64 `json:"car_miles"`
	LEDBulbs          float64 `json:"led_bulbs"`
	Homes             float64 `json:"homes"`
	SmartphoneCharges float64 `json:"smartphone_charges"`
	BeefBurgers       float64 `json:"beef_burgers"`
	PlasticBags       float64 `json:"plastic_bags"`
}

// EquivalencyResult is a single display-ready comparison.
type EquivalencyResult struct {
	// Type identifies the comparison.
	Type EquivalencyType `json:"type"`

	// Value is the raw equivalency value.
	Value float64 `json:"value"`

	// FormattedValue is rounded and thousands-separated.
	FormattedValue string `json:"formatted_value"`

	// Label is the descriptive phrase (e.g., "trees needed").
	Label string `json:"label"`
}

// Tier orders badges from best (lowest footprint) to worst.
type Tier int

const (
	// TierPlanetGuardian is awarded for the lowest footprints.
	TierPlanetGuardian Tier = iota

	// TierConsciousConsumer is the middle tier.
	TierConsciousConsumer

	// TierEcoStarter is the entry tier and the ceiling fallback.
	TierEcoStarter
)

// String returns the badge title for the tier.
func (t Tier) String() string {
	switch t {
	case TierPlanetGuardian:
		return "Planet Guardian"
	case TierConsciousConsumer:
		return "Conscious Consumer"
	case TierEcoStarter:
		return "Eco Starter"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Badge is a threshold-selected tier label.
type Badge struct {
	Tier        Tier    `json:"tier"`
	Title       string  `json:"title"`
	Icon        string  `json:"icon"`
	Level       string  `json:"level"`
	Description string  `json:"description"`
	Threshold   float64 `json:"threshold"`
}

// Achievement is an independent per-category threshold flag.
type Achievement struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AchievementSet is the score plus every achievement that fired.
type AchievementSet struct {
	// Score is 100 minus five points per unit of total. It is not clamped and
	// goes negative for large footprints.
	Score float64 `json:"total_score"`

	// Achievements lists fired achievements in a fixed order.
	Achievements []Achievement `json:"achievements"`
}

// Has reports whether the achievement with the given ID fired.
func (s AchievementSet) Has(id string) bool {
	for _, a := range s.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}
