package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rshade/carbonfoot/internal/footprint"
)

// Kind is the value type of a profile field.
type Kind int

const (
	// KindChoice is a free-text categorical value; unknown values are kept.
	KindChoice Kind = iota

	// KindText is free text with no listed choices.
	KindText

	// KindInt is a whole number.
	KindInt

	// KindFloat is a decimal number.
	KindFloat
)

// Field describes one flat, form-style profile key.
type Field struct {
	// Key is the form field name, e.g. transport_mode.
	Key string

	// Section is the profile section the field belongs to.
	Section string

	// Label is the human-readable field name.
	Label string

	Kind Kind

	// Choices lists the values offered by the form. Other values are
	// accepted and resolve to the estimator's defaults.
	Choices []string

	get func(p *footprint.Profile) string
	set func(p *footprint.Profile, v string) error
}

// Get returns the field's current value in p as a string.
func (f Field) Get(p footprint.Profile) string {
	return f.get(&p)
}

// Next returns the choice after current, wrapping around. Fields without
// choices return current unchanged.
func (f Field) Next(current string) string {
	if len(f.Choices) == 0 {
		return current
	}
	for i, c := range f.Choices {
		if c == current {
			return f.Choices[(i+1)%len(f.Choices)]
		}
	}
	return f.Choices[0]
}

func choice(section, key, label string, choices []string, ptr func(p *footprint.Profile) *string) Field {
	kind := KindChoice
	if len(choices) == 0 {
		kind = KindText
	}
	return Field{
		Key:     key,
		Section: section,
		Label:   label,
		Kind:    kind,
		Choices: choices,
		get:     func(p *footprint.Profile) string { return *ptr(p) },
		set: func(p *footprint.Profile, v string) error {
			*ptr(p) = v
			return nil
		},
	}
}

func intField(section, key, label string, ptr func(p *footprint.Profile) *int) Field {
	return Field{
		Key:     key,
		Section: section,
		Label:   label,
		Kind:    KindInt,
		get:     func(p *footprint.Profile) string { return strconv.Itoa(*ptr(p)) },
		set: func(p *footprint.Profile, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%w: %s=%q is not a whole number", ErrInvalidValue, key, v)
			}
			*ptr(p) = n
			return nil
		},
	}
}

func floatField(section, key, label string, ptr func(p *footprint.Profile) *float64) Field {
	return Field{
		Key:     key,
		Section: section,
		Label:   label,
		Kind:    KindFloat,
		get:     func(p *footprint.Profile) string { return strconv.FormatFloat(*ptr(p), 'f', -1, 64) },
		set: func(p *footprint.Profile, v string) error {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidValue, key, v)
			}
			*ptr(p) = f
			return nil
		},
	}
}

// fields is the registry in form order.
//
//nolint:gochecknoglobals // Immutable field registry.
var fields = []Field{
	choice("about", "name", "Name", nil, func(p *footprint.Profile) *string { return &p.About.Name }),
	intField("about", "age", "Age", func(p *footprint.Profile) *int { return &p.About.Age }),
	choice("about", "location", "Location", nil, func(p *footprint.Profile) *string { return &p.About.Location }),

	intField("household", "household_members", "Household members",
		func(p *footprint.Profile) *int { return &p.Household.Members }),
	floatField("household", "monthly_electricity", "Monthly electricity bill",
		func(p *footprint.Profile) *float64 { return &p.Household.MonthlyElectricity }),
	choice("household", "renewable_energy", "Renewable energy", []string{"no", "yes"},
		func(p *footprint.Profile) *string { return &p.Household.RenewableEnergy }),
	choice("household", "cooking_fuel", "Cooking fuel",
		[]string{"lpg", "electricity", "induction", "biomass", "others"},
		func(p *footprint.Profile) *string { return &p.Household.CookingFuel }),

	choice("transport", "transport_mode", "Primary transportation",
		[]string{"car", "bike", "bus", "metro", "bicycle", "walking", "wfh"},
		func(p *footprint.Profile) *string { return &p.Transport.Mode }),
	choice("transport", "vehicle_fuel", "Vehicle fuel",
		[]string{"none", "petrol", "diesel", "cng", "electric"},
		func(p *footprint.Profile) *string { return &p.Transport.VehicleFuel }),
	floatField("transport", "daily_travel", "Daily travel (km)",
		func(p *footprint.Profile) *float64 { return &p.Transport.DailyTravelKm }),
	intField("transport", "domestic_flights", "Domestic flights per year",
		func(p *footprint.Profile) *int { return &p.Transport.DomesticFlights }),
	intField("transport", "international_flights", "International flights per year",
		func(p *footprint.Profile) *int { return &p.Transport.InternationalFlights }),

	choice("food", "diet_type", "Diet type", []string{"vegetarian", "non-vegetarian", "vegan", "eggetarian"},
		func(p *footprint.Profile) *string { return &p.Food.DietType }),
	choice("food", "red_meat", "Red meat", []string{"never", "occasional", "weekly", "frequent"},
		func(p *footprint.Profile) *string { return &p.Food.RedMeat }),
	choice("food", "dairy", "Dairy", []string{"daily", "occasional", "rarely", "never"},
		func(p *footprint.Profile) *string { return &p.Food.Dairy }),
	choice("food", "food_waste", "Food waste", []string{"often", "sometimes", "rarely", "never"},
		func(p *footprint.Profile) *string { return &p.Food.FoodWaste }),

	choice("waste", "waste_segregation", "Waste segregation", []string{"yes", "no"},
		func(p *footprint.Profile) *string { return &p.Waste.Segregation }),
	choice("waste", "recycling", "Recycling", []string{"all", "some", "none"},
		func(p *footprint.Profile) *string { return &p.Waste.Recycling }),
	choice("waste", "weekly_waste", "Weekly waste", []string{"low", "medium", "high", "very_high"},
		func(p *footprint.Profile) *string { return &p.Waste.WeeklyWaste }),

	choice("lifestyle", "yearly_clothes", "Yearly clothing", []string{"minimal", "moderate", "frequent", "excessive"},
		func(p *footprint.Profile) *string { return &p.Lifestyle.YearlyClothes }),
	choice("lifestyle", "electronics", "Yearly electronics", []string{"none", "low", "medium", "high"},
		func(p *footprint.Profile) *string { return &p.Lifestyle.Electronics }),
	choice("lifestyle", "online_shopping", "Online shopping", []string{"rarely", "monthly", "weekly", "daily"},
		func(p *footprint.Profile) *string { return &p.Lifestyle.OnlineShopping }),

	choice("household", "ac_usage", "Air conditioning", []string{"no", "seasonal", "moderate", "heavy"},
		func(p *footprint.Profile) *string { return &p.Household.ACUsage }),
	choice("household", "home_type", "Home type", []string{"apartment1", "apartment2", "house", "villa"},
		func(p *footprint.Profile) *string { return &p.Household.HomeType }),
	choice("household", "water_usage", "Water usage", []string{"low", "medium", "high", "unknown"},
		func(p *footprint.Profile) *string { return &p.Household.WaterUsage }),
	choice("about", "green_programs", "Green programs", []string{"none", "tree", "credits", "multiple"},
		func(p *footprint.Profile) *string { return &p.About.GreenPrograms }),
	choice("about", "pets", "Pets", []string{"none", "dog", "cat", "multiple"},
		func(p *footprint.Profile) *string { return &p.About.Pets }),
}

// Fields returns every settable profile field in form order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// LookupField returns the field registered under key.
func LookupField(key string) (Field, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Apply returns a copy of p with the named field set to value. Unknown keys
// and unparsable numbers are errors; unknown choice values are accepted.
func Apply(p footprint.Profile, key, value string) (footprint.Profile, error) {
	f, ok := LookupField(key)
	if !ok {
		return p, fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	if err := f.set(&p, value); err != nil {
		return p, err
	}
	return p, nil
}
