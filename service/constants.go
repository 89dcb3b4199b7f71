package service

const (
	MaxCoverageAmount = 10_000_000_000 // 100억 KRW per rider
	MaxPlanYears      = 10             // scenario horizon
	DaysPerYear       = 365

	// KB payout caps, per the rider terms.
	MaxKBMajorPayoutsPerYear   = 5
	MaxKBNonCoveredDrugPayouts = 10
)
