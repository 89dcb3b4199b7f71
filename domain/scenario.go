package domain

type TreatmentEvent string

const (
	EventSurgery           TreatmentEvent = "surgery"
	EventRadiation         TreatmentEvent = "radiation"
	EventChemoDrug         TreatmentEvent = "chemo_drug"
	EventHormoneTherapy    TreatmentEvent = "hormone_therapy"
	EventCarbonIon         TreatmentEvent = "carbon_ion"
	EventIMRT              TreatmentEvent = "imrt"
	EventProtonBeam        TreatmentEvent = "proton_beam"
	EventStereotactic      TreatmentEvent = "stereotactic"
	EventRobotic           TreatmentEvent = "robotic"
	EventTargetedCovered   TreatmentEvent = "targeted_covered"
	EventTargetedNonCov    TreatmentEvent = "targeted_non_covered"
	EventImmuneCovered     TreatmentEvent = "immune_covered"
	EventImmuneNonCov      TreatmentEvent = "immune_non_covered"
	EventTertiaryHospital  TreatmentEvent = "tertiary_hospital"
	EventIntensiveCareUnit TreatmentEvent = "icu"
)

func (e TreatmentEvent) Valid() bool {
	switch e {
	case EventSurgery, EventRadiation, EventChemoDrug, EventHormoneTherapy,
		EventCarbonIon, EventIMRT, EventProtonBeam, EventStereotactic,
		EventRobotic, EventTargetedCovered, EventTargetedNonCov,
		EventImmuneCovered, EventImmuneNonCov, EventTertiaryHospital,
		EventIntensiveCareUnit:
		return true
	}
	return false
}

// SamsungCoverage holds the subscribed amount (KRW) per Samsung Life rider.
// A zero amount means the rider is not subscribed.
type SamsungCoverage struct {
	MajorTreatment        int64 `json:"major_treatment"`
	MinorMajorTreatment   int64 `json:"minor_major_treatment"`
	DirectTreatment       int64 `json:"direct_treatment"`
	MinorDirectTreatment  int64 `json:"minor_direct_treatment"`
	TertiaryHospital      int64 `json:"tertiary_hospital"`
	MinorTertiaryHospital int64 `json:"minor_tertiary_hospital"`
	PremiumTreatment      int64 `json:"premium_treatment"`
	FirstRadiation        int64 `json:"first_radiation"`
	FirstChemoDrug        int64 `json:"first_chemo_drug"`
	FirstCarbonIon        int64 `json:"first_carbon_ion"`
}

// KBCoverage holds the subscribed amount (KRW) per KB Insurance rider.
type KBCoverage struct {
	MajorTreatment      int64 `json:"major_treatment"`
	MinorMajorTreatment int64 `json:"minor_major_treatment"`
	NonCoveredMajor     int64 `json:"non_covered_major"`
	NonCoveredDrug      int64 `json:"non_covered_drug"`
	FirstRadiation      int64 `json:"first_radiation"`
	FirstChemoDrug      int64 `json:"first_chemo_drug"`
	FirstCarbonIon      int64 `json:"first_carbon_ion"`
}

// TreatmentPlan is a multi-year treatment scenario for one customer.
// MinorCancer selects the thyroid/other-skin-cancer rider variants.
type TreatmentPlan struct {
	Customer     string                   `json:"customer"`
	MinorCancer  bool                     `json:"minor_cancer"`
	EventsByYear map[int][]TreatmentEvent `json:"events_by_year"`
	Samsung      SamsungCoverage          `json:"samsung"`
	KB           KBCoverage               `json:"kb"`
}

// PlanDetail is one payout line of a simulated plan.
type PlanDetail struct {
	Year   int    `json:"year"`
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

type PlanResult struct {
	SamsungTotal int64        `json:"samsung_total"`
	KBTotal      int64        `json:"kb_total"`
	GrandTotal   int64        `json:"grand_total"`
	Detail       []PlanDetail `json:"detail"`
	Explanation  string       `json:"explanation,omitempty"`
}
