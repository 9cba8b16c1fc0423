package footprint

import "math"

// Estimate computes the annual emissions breakdown for a profile.
//
// Estimate is pure and total: the profile is normalized first (negative or
// non-finite numbers become 0, a household of fewer than one member counts as
// one) and every categorical lookup falls back to its table default.
//
// Flight weights are added to the same running total as the distance-based
// figure without unit conversion, kept for output compatibility with
// earlier results.
func Estimate(p Profile) Breakdown {
	p = p.Normalized()

	b := Breakdown{
		Transportation: transportation(p.Transport),
		Household:      household(p.Household),
		Food:           food(p.Food),
		Waste:          waste(p.Waste),
		Lifestyle:      lifestyle(p.Lifestyle),
	}
	b.Total = b.Transportation + b.Household + b.Food + b.Waste + b.Lifestyle

	return b
}

// Normalized returns a copy of p with numeric fields clamped to their valid
// ranges. Categorical fields are left untouched.
func (p Profile) Normalized() Profile {
	p.Transport.DailyTravelKm = nonNegative(p.Transport.DailyTravelKm)
	p.Transport.DomesticFlights = max(p.Transport.DomesticFlights, 0)
	p.Transport.InternationalFlights = max(p.Transport.InternationalFlights, 0)

	p.Household.MonthlyElectricity = nonNegative(p.Household.MonthlyElectricity)
	p.Household.Members = max(p.Household.Members, 1)

	return p
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func transportation(t TransportProfile) float64 {
	rate := modeRates.Lookup(t.Mode)
	if t.Mode == "car" {
		rate = carFuelRates.Lookup(t.VehicleFuel)
	}

	total := t.DailyTravelKm * rate * DaysPerYear
	total += float64(t.DomesticFlights) * DomesticFlightWeight
	total += float64(t.InternationalFlights) * InternationalFlightWeight
	return total
}

func household(h HouseholdProfile) float64 {
	units := h.MonthlyElectricity / ElectricityPricePerUnit
	base := units * GridIntensityPerUnit * MonthsPerYear / float64(h.Members)
	return base * acMultipliers.Lookup(h.ACUsage) * homeMultipliers.Lookup(h.HomeType)
}

func food(f FoodProfile) float64 {
	base := dietRates.Lookup(f.DietType) * DaysPerYear
	return base *
		redMeatMultipliers.Lookup(f.RedMeat) *
		dairyMultipliers.Lookup(f.Dairy) *
		foodWasteMultipliers.Lookup(f.FoodWaste)
}

func waste(w WasteProfile) float64 {
	base := weeklyWasteBase.Lookup(w.WeeklyWaste)
	base *= recyclingMultipliers.Lookup(w.Recycling)
	base *= segregationMultipliers.Lookup(w.Segregation)
	return base
}

func lifestyle(l LifestyleProfile) float64 {
	return clothingWeights.Lookup(l.YearlyClothes) +
		electronicsWeights.Lookup(l.Electronics) +
		shoppingWeights.Lookup(l.OnlineShopping)
}
