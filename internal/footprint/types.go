// Package footprint estimates an annual carbon footprint from a self-reported
// lifestyle profile.
//
// The estimate is a fixed sequence of table lookups and multiplications over
// five categories: transportation, household, food, waste and lifestyle.
// Every categorical field is a free-text string; values that are missing or
// not present in a lookup table resolve to that table's default weight, so
// Estimate never fails.
package footprint

import "fmt"

// Category identifies one of the five emission categories.
type Category int

const (
	// CategoryTransportation covers daily travel and flights.
	CategoryTransportation Category = iota

	// CategoryHousehold covers electricity use adjusted for AC and home size.
	CategoryHousehold

	// CategoryFood covers diet and consumption habits.
	CategoryFood

	// CategoryWaste covers household waste volume, recycling and segregation.
	CategoryWaste

	// CategoryLifestyle covers clothing, electronics and online shopping.
	CategoryLifestyle
)

// String returns the lowercase name used as the JSON key for the category.
func (c Category) String() string {
	switch c {
	case CategoryTransportation:
		return "transportation"
	case CategoryHousehold:
		return "household"
	case CategoryFood:
		return "food"
	case CategoryWaste:
		return "waste"
	case CategoryLifestyle:
		return "lifestyle"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Label returns the capitalized display name of the category.
func (c Category) Label() string {
	switch c {
	case CategoryTransportation:
		return "Transportation"
	case CategoryHousehold:
		return "Household"
	case CategoryFood:
		return "Food"
	case CategoryWaste:
		return "Waste"
	case CategoryLifestyle:
		return "Lifestyle"
	default:
		return c.String()
	}
}

// Categories returns all categories in summation order.
func Categories() []Category {
	return []Category{
		CategoryTransportation,
		CategoryHousehold,
		CategoryFood,
		CategoryWaste,
		CategoryLifestyle,
	}
}

// Profile is one submission of lifestyle data.
//
// Field names in JSON and YAML match the --set override keys so a
// serialized session can be replayed as-is.
type Profile struct {
	About     AboutProfile     `json:"about"     yaml:"about"`
	Transport TransportProfile `json:"transport" yaml:"transport"`
	Household HouseholdProfile `json:"household" yaml:"household"`
	Food      FoodProfile      `json:"food"      yaml:"food"`
	Waste     WasteProfile     `json:"waste"     yaml:"waste"`
	Lifestyle LifestyleProfile `json:"lifestyle" yaml:"lifestyle"`
}

// AboutProfile holds informational fields. None of them affect the estimate.
type AboutProfile struct {
	Name          string `json:"name,omitempty"           yaml:"name,omitempty"`
	Age           int    `json:"age,omitempty"            yaml:"age,omitempty"`
	Location      string `json:"location,omitempty"       yaml:"location,omitempty"`
	GreenPrograms string `json:"green_programs,omitempty" yaml:"green_programs,omitempty"`
	Pets          string `json:"pets,omitempty"           yaml:"pets,omitempty"`
}

// TransportProfile describes commuting and flying habits.
type TransportProfile struct {
	// Mode is one of car, bike, bus, metro, bicycle, walking, wfh.
	Mode string `json:"transport_mode" yaml:"transport_mode"`

	// VehicleFuel is one of none, petrol, diesel, cng, electric. Only
	// consulted when Mode is car.
	VehicleFuel string `json:"vehicle_fuel" yaml:"vehicle_fuel"`

	// DailyTravelKm is the daily distance travelled in kilometres.
	DailyTravelKm float64 `json:"daily_travel" yaml:"daily_travel"`

	DomesticFlights      int `json:"domestic_flights"      yaml:"domestic_flights"`
	InternationalFlights int `json:"international_flights" yaml:"international_flights"`
}

// HouseholdProfile describes home energy use.
type HouseholdProfile struct {
	// MonthlyElectricity is the monthly electricity bill in local currency.
	MonthlyElectricity float64 `json:"monthly_electricity" yaml:"monthly_electricity"`

	// Members divides the household total. Values below 1 are treated as 1.
	Members int `json:"household_members" yaml:"household_members"`

	// ACUsage is one of no, seasonal, moderate, heavy.
	ACUsage string `json:"ac_usage" yaml:"ac_usage"`

	// HomeType is one of apartment1, apartment2, house, villa.
	HomeType string `json:"home_type" yaml:"home_type"`

	WaterUsage      string `json:"water_usage,omitempty"      yaml:"water_usage,omitempty"`
	RenewableEnergy string `json:"renewable_energy,omitempty" yaml:"renewable_energy,omitempty"`
	CookingFuel     string `json:"cooking_fuel,omitempty"     yaml:"cooking_fuel,omitempty"`
}

// FoodProfile describes diet and consumption frequency.
type FoodProfile struct {
	// DietType is one of non-vegetarian, vegetarian, vegan, eggetarian.
	DietType string `json:"diet_type" yaml:"diet_type"`

	// RedMeat is one of never, occasional, weekly, frequent.
	RedMeat string `json:"red_meat" yaml:"red_meat"`

	// Dairy is one of never, rarely, occasional, daily.
	Dairy string `json:"dairy" yaml:"dairy"`

	// FoodWaste is one of never, rarely, sometimes, often.
	FoodWaste string `json:"food_waste" yaml:"food_waste"`
}

// WasteProfile describes household waste habits.
type WasteProfile struct {
	// WeeklyWaste is one of low, medium, high, very_high.
	WeeklyWaste string `json:"weekly_waste" yaml:"weekly_waste"`

	// Recycling is one of all, some, none.
	Recycling string `json:"recycling" yaml:"recycling"`

	// Segregation is yes or no.
	Segregation string `json:"waste_segregation" yaml:"waste_segregation"`
}

// LifestyleProfile describes purchasing habits.
type LifestyleProfile struct {
	// YearlyClothes is one of minimal, moderate, frequent, excessive.
	YearlyClothes string `json:"yearly_clothes" yaml:"yearly_clothes"`

	// Electronics is one of none, low, medium, high.
	Electronics string `json:"electronics" yaml:"electronics"`

	// OnlineShopping is one of rarely, monthly, weekly, daily.
	OnlineShopping string `json:"online_shopping" yaml:"online_shopping"`
}

// Breakdown is the per-category annual estimate plus its total.
//
// Values are never negative and Total is always the sum of the five
// categories in Categories order. No rounding is applied.
type Breakdown struct {
	Transportation float64 `json:"transportation"`
	Household      float64 `json:"household"`
	Food           float64 `json:"food"`
	Waste          float64 `json:"waste"`
	Lifestyle      float64 `json:"lifestyle"`
	Total          float64 `json:"total"`
}

// Value returns the estimate for a single category.
func (b Breakdown) Value(c Category) float64 {
	switch c {
	case CategoryTransportation:
		return b.Transportation
	case CategoryHousehold:
		return b.Household
	case CategoryFood:
		return b.Food
	case CategoryWaste:
		return b.Waste
	case CategoryLifestyle:
		return b.Lifestyle
	default:
		return 0
	}
}
