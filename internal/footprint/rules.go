package footprint

import (
	"maps"
	"slices"
)

// Conversion constants shared by the category rules.
const (
	// DaysPerYear annualizes daily rates.
	DaysPerYear = 365

	// MonthsPerYear annualizes monthly spend.
	MonthsPerYear = 12

	// ElectricityPricePerUnit converts a monthly bill into consumed units.
	ElectricityPricePerUnit = 8.0

	// GridIntensityPerUnit is the emission weight of one consumed unit.
	GridIntensityPerUnit = 0.85

	// DomesticFlightWeight is added once per domestic flight.
	DomesticFlightWeight = 90.0

	// InternationalFlightWeight is added once per international flight.
	InternationalFlightWeight = 200.0
)

// Table is an immutable lookup from a categorical value to a weight.
// Keys are matched exactly; anything else resolves to Default.
type Table struct {
	// Name is the profile field the table is keyed by.
	Name string

	// Default applies to missing and unrecognized values.
	Default float64

	weights map[string]float64
}

func newTable(name string, def float64, weights map[string]float64) Table {
	return Table{Name: name, Default: def, weights: weights}
}

// Lookup returns the weight for key, or Default when key is not in the table.
func (t Table) Lookup(key string) float64 {
	if w, ok := t.weights[key]; ok {
		return w
	}
	return t.Default
}

// Keys returns the recognized values in sorted order.
func (t Table) Keys() []string {
	return slices.Sorted(maps.Keys(t.weights))
}

// Weights returns a copy of the recognized values and their weights.
func (t Table) Weights() map[string]float64 {
	return maps.Clone(t.weights)
}

// Lookup tables. Unexported so that callers cannot mutate them; use Tables
// for a read-only listing.
//
//nolint:gochecknoglobals // Fixed rule tables.
var (
	modeRates = newTable("transport_mode", 0, map[string]float64{
		"car":  0.20,
		"bike": 0.10,
		"bus":  0.08,
	})

	// carFuelRates replaces the car entry of modeRates when the mode is car.
	carFuelRates = newTable("vehicle_fuel", 0.20, map[string]float64{
		"diesel":   0.25,
		"electric": 0.05,
		"cng":      0.15,
	})

	acMultipliers = newTable("ac_usage", 1.0, map[string]float64{
		"no":       1.0,
		"seasonal": 1.2,
		"moderate": 1.4,
		"heavy":    1.6,
	})

	homeMultipliers = newTable("home_type", 1.0, map[string]float64{
		"apartment1": 1.0,
		"apartment2": 1.2,
		"house":      1.4,
		"villa":      1.6,
	})

	dietRates = newTable("diet_type", 1.5, map[string]float64{
		"non-vegetarian": 2.5,
		"vegetarian":     1.5,
		"vegan":          1.1,
		"eggetarian":     1.7,
	})

	redMeatMultipliers = newTable("red_meat", 1.0, map[string]float64{
		"never":      1.0,
		"occasional": 1.2,
		"weekly":     1.4,
		"frequent":   1.6,
	})

	dairyMultipliers = newTable("dairy", 1.0, map[string]float64{
		"never":      1.0,
		"rarely":     1.1,
		"occasional": 1.2,
		"daily":      1.3,
	})

	foodWasteMultipliers = newTable("food_waste", 1.0, map[string]float64{
		"never":     1.0,
		"rarely":    1.1,
		"sometimes": 1.2,
		"often":     1.3,
	})

	weeklyWasteBase = newTable("weekly_waste", 200, map[string]float64{
		"low":       100,
		"medium":    200,
		"high":      400,
		"very_high": 600,
	})

	recyclingMultipliers = newTable("recycling", 1.0, map[string]float64{
		"all":  0.6,
		"some": 0.8,
	})

	segregationMultipliers = newTable("waste_segregation", 1.0, map[string]float64{
		"yes": 0.9,
	})

	clothingWeights = newTable("yearly_clothes", 200, map[string]float64{
		"minimal":   100,
		"moderate":  200,
		"frequent":  400,
		"excessive": 600,
	})

	electronicsWeights = newTable("electronics", 100, map[string]float64{
		"none":   0,
		"low":    100,
		"medium": 200,
		"high":   400,
	})

	shoppingWeights = newTable("online_shopping", 100, map[string]float64{
		"rarely":  50,
		"monthly": 100,
		"weekly":  200,
		"daily":   400,
	})
)

// RuleSet groups the lookup tables used by one category.
type RuleSet struct {
	Category Category
	Tables   []Table
}

// Tables returns every lookup table grouped by category, in summation order.
func Tables() []RuleSet {
	return []RuleSet{
		{Category: CategoryTransportation, Tables: []Table{modeRates, carFuelRates}},
		{Category: CategoryHousehold, Tables: []Table{acMultipliers, homeMultipliers}},
		{Category: CategoryFood, Tables: []Table{dietRates, redMeatMultipliers, dairyMultipliers, foodWasteMultipliers}},
		{Category: CategoryWaste, Tables: []Table{weeklyWasteBase, recyclingMultipliers, segregationMultipliers}},
		{Category: CategoryLifestyle, Tables: []Table{clothingWeights, electronicsWeights, shoppingWeights}},
	}
}
