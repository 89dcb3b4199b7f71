package service

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"benefit-calculator/domain"
)

// ScenarioService simulates a multi-year treatment plan against the
// subscribed rider amounts of both insurers.
type ScenarioService struct {
	advisor *AdvisorService
	logger  *zap.Logger
}

func NewScenarioService(advisor *AdvisorService, logger *zap.Logger) *ScenarioService {
	return &ScenarioService{advisor: advisor, logger: logger}
}

// SimulatePlan runs the plan through both insurers' payout rules and returns
// the combined, itemized result. Deterministic for identical plans.
func (s *ScenarioService) SimulatePlan(
	plan domain.TreatmentPlan,
) (domain.PlanResult, error) {

	if len(plan.EventsByYear) == 0 {
		return domain.PlanResult{}, fmt.Errorf("%w: no treatment years provided", domain.ErrInvalidInput)
	}
	for year, events := range plan.EventsByYear {
		if year < 1 || year > MaxPlanYears {
			return domain.PlanResult{}, fmt.Errorf("%w: year %d outside 1..%d", domain.ErrInvalidInput, year, MaxPlanYears)
		}
		for _, event := range events {
			if !event.Valid() {
				return domain.PlanResult{}, fmt.Errorf("%w: unknown treatment event %q", domain.ErrInvalidInput, event)
			}
		}
	}
	if err := validateCoverage(plan); err != nil {
		return domain.PlanResult{}, err
	}

	samsungTotal, samsungDetail := simulateSamsung(plan.Samsung, plan.EventsByYear, plan.MinorCancer)
	kbTotal, kbDetail := simulateKB(plan.KB, plan.EventsByYear, plan.MinorCancer)

	result := domain.PlanResult{
		SamsungTotal: samsungTotal,
		KBTotal:      kbTotal,
		GrandTotal:   samsungTotal + kbTotal,
		Detail:       append(samsungDetail, kbDetail...),
	}
	if s.advisor != nil {
		result.Explanation = s.advisor.ExplainPlan(plan, result)
	}
	return result, nil
}

func validateCoverage(plan domain.TreatmentPlan) error {
	amounts := []int64{
		plan.Samsung.MajorTreatment, plan.Samsung.MinorMajorTreatment,
		plan.Samsung.DirectTreatment, plan.Samsung.MinorDirectTreatment,
		plan.Samsung.TertiaryHospital, plan.Samsung.MinorTertiaryHospital,
		plan.Samsung.PremiumTreatment, plan.Samsung.FirstRadiation,
		plan.Samsung.FirstChemoDrug, plan.Samsung.FirstCarbonIon,
		plan.KB.MajorTreatment, plan.KB.MinorMajorTreatment,
		plan.KB.NonCoveredMajor, plan.KB.NonCoveredDrug,
		plan.KB.FirstRadiation, plan.KB.FirstChemoDrug, plan.KB.FirstCarbonIon,
	}
	anyPositive := false
	for _, amount := range amounts {
		if amount < 0 {
			return fmt.Errorf("%w: coverage amounts must not be negative", domain.ErrInvalidInput)
		}
		if amount > MaxCoverageAmount {
			return fmt.Errorf("%w: coverage amount exceeds the maximum of %d KRW", domain.ErrInvalidInput, int64(MaxCoverageAmount))
		}
		if amount > 0 {
			anyPositive = true
		}
	}
	if !anyPositive {
		return fmt.Errorf("%w: at least one subscribed rider amount is required", domain.ErrInvalidInput)
	}
	return nil
}

func sortedYears(eventsByYear map[int][]domain.TreatmentEvent) []int {
	years := make([]int, 0, len(eventsByYear))
	for year := range eventsByYear {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

func hasAny(events []domain.TreatmentEvent, wanted ...domain.TreatmentEvent) bool {
	for _, event := range events {
		for _, w := range wanted {
			if event == w {
				return true
			}
		}
	}
	return false
}

// simulateSamsung applies the Samsung Life rider terms year by year.
// First-occurrence riders pay once across the whole plan.
func simulateSamsung(
	cov domain.SamsungCoverage,
	eventsByYear map[int][]domain.TreatmentEvent,
	minor bool,
) (int64, []domain.PlanDetail) {

	var total int64
	var detail []domain.PlanDetail
	radiationPaid, drugPaid, carbonPaid := false, false, false

	pay := func(year int, label string, amount int64) {
		total += amount
		detail = append(detail, domain.PlanDetail{Year: year, Label: label, Amount: amount})
	}

	for _, year := range sortedYears(eventsByYear) {
		events := eventsByYear[year]

		majorTrigger := hasAny(events, domain.EventSurgery, domain.EventRadiation, domain.EventChemoDrug)
		directTrigger := majorTrigger || hasAny(events, domain.EventHormoneTherapy)

		if !minor && cov.MajorTreatment > 0 && majorTrigger {
			pay(year, "Samsung cancer major treatment", cov.MajorTreatment)
		}
		if minor && cov.MinorMajorTreatment > 0 && majorTrigger {
			pay(year, "Samsung thyroid/other skin cancer major treatment", cov.MinorMajorTreatment)
		}

		if !minor && cov.DirectTreatment > 0 && directTrigger {
			pay(year, "Samsung cancer direct treatment", cov.DirectTreatment)
		}
		if minor && cov.MinorDirectTreatment > 0 && directTrigger {
			pay(year, "Samsung thyroid/other skin cancer direct treatment", cov.MinorDirectTreatment)
		}

		if !minor && cov.TertiaryHospital > 0 && hasAny(events, domain.EventTertiaryHospital) {
			pay(year, "Samsung tertiary hospital cancer direct treatment", cov.TertiaryHospital)
		}
		if minor && cov.MinorTertiaryHospital > 0 && hasAny(events, domain.EventTertiaryHospital) {
			pay(year, "Samsung tertiary hospital thyroid/other skin cancer direct treatment", cov.MinorTertiaryHospital)
		}

		// Premium direct-treatment rider: non-covered therapy implies the
		// covered leg as well, and non-covered immunotherapy pays all four
		// legs. Each special radiotherapy modality pays separately.
		if cov.PremiumTreatment > 0 {
			if hasAny(events, domain.EventTargetedCovered) {
				pay(year, "Samsung premium: targeted therapy (covered)", cov.PremiumTreatment)
			}
			if hasAny(events, domain.EventTargetedNonCov) {
				pay(year, "Samsung premium: targeted therapy (covered)", cov.PremiumTreatment)
				pay(year, "Samsung premium: targeted therapy (non-covered)", cov.PremiumTreatment)
			}
			if hasAny(events, domain.EventImmuneCovered) {
				pay(year, "Samsung premium: targeted therapy (covered)", cov.PremiumTreatment)
				pay(year, "Samsung premium: immunotherapy (covered)", cov.PremiumTreatment)
			}
			if hasAny(events, domain.EventImmuneNonCov) {
				pay(year, "Samsung premium: targeted therapy (covered)", cov.PremiumTreatment)
				pay(year, "Samsung premium: targeted therapy (non-covered)", cov.PremiumTreatment)
				pay(year, "Samsung premium: immunotherapy (covered)", cov.PremiumTreatment)
				pay(year, "Samsung premium: immunotherapy (non-covered)", cov.PremiumTreatment)
			}
			modalities := []struct {
				event domain.TreatmentEvent
				label string
			}{
				{domain.EventIMRT, "Samsung premium: intensity-modulated radiotherapy"},
				{domain.EventProtonBeam, "Samsung premium: proton beam therapy"},
				{domain.EventStereotactic, "Samsung premium: stereotactic radiotherapy"},
				{domain.EventRobotic, "Samsung premium: robotic surgery"},
			}
			for _, m := range modalities {
				if hasAny(events, m.event) {
					pay(year, m.label, cov.PremiumTreatment)
				}
			}
		}

		if !radiationPaid && cov.FirstRadiation > 0 && hasAny(events, domain.EventRadiation) {
			radiationPaid = true
			pay(year, "Samsung first radiation therapy", cov.FirstRadiation)
		}
		if !drugPaid && cov.FirstChemoDrug > 0 && hasAny(events, domain.EventChemoDrug) {
			drugPaid = true
			pay(year, "Samsung first chemotherapy drug", cov.FirstChemoDrug)
		}
		if !carbonPaid && cov.FirstCarbonIon > 0 && hasAny(events, domain.EventCarbonIon) {
			carbonPaid = true
			pay(year, "Samsung first carbon-ion therapy", cov.FirstCarbonIon)
		}
	}

	return total, detail
}

// simulateKB applies the KB Insurance rider terms: the major-treatment rider
// is capped per year and halves on ICU years, the non-covered drug rider is
// capped over the plan lifetime.
func simulateKB(
	cov domain.KBCoverage,
	eventsByYear map[int][]domain.TreatmentEvent,
	minor bool,
) (int64, []domain.PlanDetail) {

	var total int64
	var detail []domain.PlanDetail
	majorCountByYear := make(map[int]int)
	nonCoveredDrugCount := 0
	radiationPaid, drugPaid, carbonPaid := false, false, false

	pay := func(year int, label string, amount int64) {
		total += amount
		detail = append(detail, domain.PlanDetail{Year: year, Label: label, Amount: amount})
	}

	for _, year := range sortedYears(eventsByYear) {
		events := eventsByYear[year]

		majorTrigger := hasAny(events,
			domain.EventSurgery, domain.EventRadiation, domain.EventChemoDrug,
			domain.EventHormoneTherapy, domain.EventIntensiveCareUnit)
		icu := hasAny(events, domain.EventIntensiveCareUnit)

		if !minor && cov.MajorTreatment > 0 && majorTrigger {
			if majorCountByYear[year] < MaxKBMajorPayoutsPerYear {
				amount := cov.MajorTreatment
				if icu {
					amount /= 2
				}
				pay(year, "KB cancer major treatment", amount)
				majorCountByYear[year]++
			}
		}
		if minor && cov.MinorMajorTreatment > 0 && majorTrigger {
			if majorCountByYear[year] < MaxKBMajorPayoutsPerYear {
				amount := cov.MinorMajorTreatment
				if icu {
					amount /= 2
				}
				pay(year, "KB similar cancer major treatment", amount)
				majorCountByYear[year]++
			}
		}

		if cov.NonCoveredMajor > 0 && hasAny(events,
			domain.EventTargetedNonCov, domain.EventImmuneNonCov,
			domain.EventRobotic, domain.EventCarbonIon) {
			pay(year, "KB non-covered cancer major treatment II", cov.NonCoveredMajor)
		}
		if cov.NonCoveredDrug > 0 && nonCoveredDrugCount < MaxKBNonCoveredDrugPayouts &&
			hasAny(events, domain.EventTargetedNonCov, domain.EventImmuneNonCov) {
			nonCoveredDrugCount++
			pay(year, "KB non-covered chemotherapy drug II", cov.NonCoveredDrug)
		}

		if !radiationPaid && cov.FirstRadiation > 0 && hasAny(events, domain.EventRadiation) {
			radiationPaid = true
			pay(year, "KB first radiation therapy", cov.FirstRadiation)
		}
		if !drugPaid && cov.FirstChemoDrug > 0 && hasAny(events, domain.EventChemoDrug) {
			drugPaid = true
			pay(year, "KB first chemotherapy drug", cov.FirstChemoDrug)
		}
		if !carbonPaid && cov.FirstCarbonIon > 0 && hasAny(events, domain.EventCarbonIon) {
			carbonPaid = true
			pay(year, "KB first carbon-ion therapy", cov.FirstCarbonIon)
		}
	}

	return total, detail
}
