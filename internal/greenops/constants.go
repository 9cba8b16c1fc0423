package greenops

// Equivalency factors per unit of total emissions. They are illustrative,
// not EPA-grade, and fixed for output compatibility with earlier results.
const (
	// KgPerTonne scales the total before dividing by tree absorption.
	KgPerTonne = 1000.0

	// TreeAbsorptionKgPerYear is the CO2 an average tree absorbs per year.
	TreeAbsorptionKgPerYear = 22.0

	// CarMilesPerTonne is miles driven per tonne.
	CarMilesPerTonne = 2500.0

	// LEDBulbYearsPerTonne is LED bulbs lit for a year per tonne.
	LEDBulbYearsPerTonne = 120.0

	// HomesPoweredPerTonne is average homes powered for a year per tonne.
	HomesPoweredPerTonne = 0.12

	// SmartphoneChargesPerTonne is full smartphone charges per tonne.
	SmartphoneChargesPerTonne = 121000.0

	// BeefBurgersPerTonne is beef burgers produced per tonne.
	BeefBurgersPerTonne = 220.0

	// PlasticBagsPerTonne is plastic bags produced per tonne.
	PlasticBagsPerTonne = 10000.0
)

// Display threshold constants.
const (
	// LargeNumberThreshold is the threshold for using abbreviated display.
	// Values at or above this threshold use "~X.X million" format.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold is the threshold for billion-scale display.
	BillionThreshold = 1_000_000_000
)

// Score constants for achievements.
const (
	// MaxScore is the score of a zero footprint.
	MaxScore = 100.0

	// ScorePenaltyPerUnit is subtracted from MaxScore per unit of total.
	ScorePenaltyPerUnit = 5.0
)

// Achievement identifiers.
const (
	AchievementLowCarbonCommuter = "low_carbon_commuter"
	AchievementEnergySaverPro    = "energy_saver_pro"
	AchievementEcoDietChampion   = "eco_diet_champion"
)
