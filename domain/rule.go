package domain

type RuleKind string

const (
	RuleFixed      RuleKind = "fixed"
	RulePercentage RuleKind = "percentage"
	RuleTiered     RuleKind = "tiered"
)

// Tier is one step of a duration-keyed payout schedule. MinYears is the
// elapsed whole policy years at which the tier starts, inclusive.
type Tier struct {
	MinYears int     `yaml:"min_years" json:"min_years"`
	Percent  float64 `yaml:"percent" json:"percent"`
}

// BenefitRule is one entry of the rule table: how a single
// (insurer, rider, diagnosis) combination pays out.
//
// Exactly one of Amount, Percent or Tiers is meaningful depending on Kind.
// WaitingPeriodDays of zero means the rider pays from day one.
type BenefitRule struct {
	Label             string   `yaml:"label" json:"label"`
	Kind              RuleKind `yaml:"kind" json:"kind"`
	Amount            int64    `yaml:"amount,omitempty" json:"amount,omitempty"`
	Percent           float64  `yaml:"percent,omitempty" json:"percent,omitempty"`
	Tiers             []Tier   `yaml:"tiers,omitempty" json:"tiers,omitempty"`
	WaitingPeriodDays int      `yaml:"waiting_period_days,omitempty" json:"waiting_period_days,omitempty"`
}
