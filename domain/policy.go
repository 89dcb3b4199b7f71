package domain

import (
	"fmt"
	"strings"
	"time"
)

type Insurer string

const (
	InsurerSamsungLife Insurer = "samsung_life"
	InsurerKBInsurance Insurer = "kb_insurance"
)

func (i Insurer) Valid() bool {
	return i == InsurerSamsungLife || i == InsurerKBInsurance
}

type RiderType string

const (
	RiderGeneralCancer    RiderType = "general_cancer"
	RiderMinorCancer      RiderType = "minor_cancer"
	RiderPremiumTreatment RiderType = "premium_treatment"
	RiderFirstRadiation   RiderType = "first_radiation"
	RiderFirstChemoDrug   RiderType = "first_chemo_drug"
	RiderFirstCarbonIon   RiderType = "first_carbon_ion"
)

func (r RiderType) Valid() bool {
	switch r {
	case RiderGeneralCancer, RiderMinorCancer, RiderPremiumTreatment,
		RiderFirstRadiation, RiderFirstChemoDrug, RiderFirstCarbonIon:
		return true
	}
	return false
}

type DiagnosisCategory string

const (
	DiagnosisEarlyStage      DiagnosisCategory = "early_stage"
	DiagnosisGeneralStage    DiagnosisCategory = "general_stage"
	DiagnosisAdvancedStage   DiagnosisCategory = "advanced_stage"
	DiagnosisCarcinomaInSitu DiagnosisCategory = "carcinoma_in_situ"
)

func (d DiagnosisCategory) Valid() bool {
	switch d {
	case DiagnosisEarlyStage, DiagnosisGeneralStage,
		DiagnosisAdvancedStage, DiagnosisCarcinomaInSitu:
		return true
	}
	return false
}

const dateLayout = "2006-01-02"

// Date is a calendar day carried as "YYYY-MM-DD" in JSON.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// PolicyInput is one quote request. AsOf is the valuation date used to
// measure elapsed policy duration; when zero the current day is used.
type PolicyInput struct {
	Insurer           Insurer           `json:"insurer"`
	RiderType         RiderType         `json:"rider_type"`
	DiagnosisCategory DiagnosisCategory `json:"diagnosis_category"`
	CoverageAmount    int64             `json:"coverage_amount"`
	PolicyStartDate   Date              `json:"policy_start_date"`
	AsOf              Date              `json:"as_of,omitempty"`
}

type LineItem struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// BenefitResult is derived deterministically from a PolicyInput and the
// loaded rule table. It is never mutated after creation.
type BenefitResult struct {
	Insurer           Insurer           `json:"insurer"`
	RiderType         RiderType         `json:"rider_type"`
	DiagnosisCategory DiagnosisCategory `json:"diagnosis_category"`
	LineItems         []LineItem        `json:"line_items"`
	Total             int64             `json:"total"`
}
