package greenops

import "math"

// Factors are the per-unit multipliers applied to a total. Trees is expressed
// as kilograms absorbed per tree per year and is the divisor of the scaled
// total; the rest are straight multipliers.
type Factors struct {
	TreeAbsorptionKg  float64 `json:"tree_absorption_kg"  yaml:"tree_absorption_kg"`
	CarMiles          float64 `json:"car_miles"           yaml:"car_miles"`
	LEDBulbs          float64 `json:"led_bulbs"           yaml:"led_bulbs"`
	Homes             float64 `json:"homes"               yaml:"homes"`
	SmartphoneCharges float64 `json:"smartphone_charges"  yaml:"smartphone_charges"`
	BeefBurgers       float64 `json:"beef_burgers"        yaml:"beef_burgers"`
	PlasticBags       float64 `json:"plastic_bags"        yaml:"plastic_bags"`
}

// DefaultFactors returns the standard equivalency factors.
func DefaultFactors() Factors {
	return Factors{
		TreeAbsorptionKg:  TreeAbsorptionKgPerYear,
		CarMiles:          CarMilesPerTonne,
		LEDBulbs:          LEDBulbYearsPerTonne,
		Homes:             HomesPoweredPerTonne,
		SmartphoneCharges: SmartphoneChargesPerTonne,
		BeefBurgers:       BeefBurgersPerTonne,
		PlasticBags:       PlasticBagsPerTonne,
	}
}

// DeriveEquivalents computes every comparison for total using DefaultFactors.
func DeriveEquivalents(total float64) Equivalents {
	return DeriveEquivalentsWith(total, DefaultFactors())
}

// DeriveEquivalentsWith computes every comparison for total using f.
//
// Each value is linear in total. A non-positive tree absorption factor yields
// zero trees instead of an infinite count.
func DeriveEquivalentsWith(total float64, f Factors) Equivalents {
	trees := 0.0
	if f.TreeAbsorptionKg > 0 {
		trees = total * KgPerTonne / f.TreeAbsorptionKg
	}

	return Equivalents{
		Trees:             trees,
		CarMiles:          total * f.CarMiles,
		LEDBulbs:          total * f.LEDBulbs,
		Homes:             total * f.Homes,
		SmartphoneCharges: total * f.SmartphoneCharges,
		BeefBurgers:       total * f.BeefBurgers,
		PlasticBags:       total * f.PlasticBags,
	}
}

// Results returns the equivalents as display-ready rows in a fixed order.
// Homes keeps one decimal place; every other value is rounded to a whole
// number.
func (e Equivalents) Results() []EquivalencyResult {
	rows := []struct {
		typ   EquivalencyType
		value float64
		label string
	}{
		{EquivalencyTrees, e.Trees, "trees needed to absorb it"},
		{EquivalencyCarMiles, e.CarMiles, "miles driven by car"},
		{EquivalencyLEDBulbs, e.LEDBulbs, "LED bulbs lit for a year"},
		{EquivalencyHomes, e.Homes, "homes powered for a year"},
		{EquivalencySmartphoneCharges, e.SmartphoneCharges, "smartphone charges"},
		{EquivalencyBeefBurgers, e.BeefBurgers, "beef burgers"},
		{EquivalencyPlasticBags, e.PlasticBags, "plastic bags"},
	}

	results := make([]EquivalencyResult, 0, len(rows))
	for _, r := range rows {
		formatted := formatEquivalencyValue(r.value)
		if r.typ == EquivalencyHomes {
			formatted = FormatFloat(r.value, 1)
		}
		results = append(results, EquivalencyResult{
			Type:           r.typ,
			Value:          r.value,
			FormattedValue: formatted,
			Label:          r.label,
		})
	}
	return results
}

// formatEquivalencyValue rounds v to a whole number with separators, or uses
// the abbreviated million/billion form at or above LargeNumberThreshold.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
