package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"benefit-calculator/domain"
)

// PDFRenderer turns a markdown proposal into PDF bytes. Satisfied by
// pdf.ChromiumRenderer; tests supply a stub.
type PDFRenderer interface {
	Render(ctx context.Context, markdown string) ([]byte, error)
}

// ProposalService builds the customer proposal document: subscribed coverage,
// the treatment scenario, the yearly payout detail, and the grand total.
type ProposalService struct {
	scenario *ScenarioService
	renderer PDFRenderer
	logger   *zap.Logger
}

func NewProposalService(scenario *ScenarioService, renderer PDFRenderer, logger *zap.Logger) *ProposalService {
	return &ProposalService{scenario: scenario, renderer: renderer, logger: logger}
}

// RenderPDF simulates the plan and renders the proposal as PDF.
func (s *ProposalService) RenderPDF(ctx context.Context, plan domain.TreatmentPlan) ([]byte, error) {
	result, err := s.scenario.SimulatePlan(plan)
	if err != nil {
		return nil, err
	}
	markdown := BuildProposalMarkdown(plan, result)
	pdf, err := s.renderer.Render(ctx, markdown)
	if err != nil {
		return nil, fmt.Errorf("render proposal: %w", err)
	}
	return pdf, nil
}

var eventLabels = map[domain.TreatmentEvent]string{
	domain.EventSurgery:           "Surgery",
	domain.EventRadiation:         "Radiation therapy",
	domain.EventChemoDrug:         "Chemotherapy drug",
	domain.EventHormoneTherapy:    "Hormone therapy",
	domain.EventCarbonIon:         "Carbon-ion therapy",
	domain.EventIMRT:              "Intensity-modulated radiotherapy",
	domain.EventProtonBeam:        "Proton beam therapy",
	domain.EventStereotactic:      "Stereotactic radiotherapy",
	domain.EventRobotic:           "Robotic surgery",
	domain.EventTargetedCovered:   "Targeted therapy (covered)",
	domain.EventTargetedNonCov:    "Targeted therapy (non-covered)",
	domain.EventImmuneCovered:     "Immunotherapy (covered)",
	domain.EventImmuneNonCov:      "Immunotherapy (non-covered)",
	domain.EventTertiaryHospital:  "Tertiary hospital treatment",
	domain.EventIntensiveCareUnit: "Intensive care unit",
}

// BuildProposalMarkdown produces the proposal document. Section order
// follows the document the sales team hands out: subscribed coverage,
// yearly treatments, yearly payouts, grand total.
func BuildProposalMarkdown(plan domain.TreatmentPlan, result domain.PlanResult) string {
	customer := strings.TrimSpace(plan.Customer)
	if customer == "" {
		customer = "Customer"
	}

	var b strings.Builder
	b.WriteString("# Customized Cancer Treatment Benefit Proposal\n\n")
	fmt.Fprintf(&b, "Dear %s,\n\n", customer)
	b.WriteString("We have summarized the benefits you could expect under the assumed treatment course below. ")
	b.WriteString("This proposal is a simulation prepared for your consultation; actual coverage and amounts depend on the individual policy terms and claim review.\n\n")

	// ① Subscribed coverage
	b.WriteString("## 1. Subscribed Coverage\n\n")
	b.WriteString("| Insurer | Rider | Amount (KRW) |\n")
	b.WriteString("| --- | --- | ---: |\n")
	rows := 0
	for _, c := range coverageRows(plan) {
		if c.amount > 0 {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", c.insurer, c.rider, FormatKRW(c.amount))
			rows++
		}
	}
	if rows == 0 {
		b.WriteString("| - | No subscribed riders | 0 |\n")
	}
	b.WriteString("\n")

	// ② Yearly treatments
	b.WriteString("## 2. Yearly Treatment Scenario\n\n")
	b.WriteString("| Year | Treatments |\n")
	b.WriteString("| --- | --- |\n")
	for _, year := range sortedYears(plan.EventsByYear) {
		events := plan.EventsByYear[year]
		names := make([]string, 0, len(events))
		for _, event := range events {
			names = append(names, eventLabels[event])
		}
		cell := "-"
		if len(names) > 0 {
			cell = strings.Join(names, " / ")
		}
		fmt.Fprintf(&b, "| Year %d | %s |\n", year, cell)
	}
	b.WriteString("\n")

	// ③ Yearly payout detail with per-year subtotals
	b.WriteString("## 3. Estimated Payouts by Year\n\n")
	b.WriteString("| Year | Payout Reason | Amount (KRW) |\n")
	b.WriteString("| --- | --- | ---: |\n")
	byYear := make(map[int][]domain.PlanDetail)
	for _, line := range result.Detail {
		byYear[line.Year] = append(byYear[line.Year], line)
	}
	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)
	for _, year := range years {
		var subtotal int64
		first := true
		for _, line := range byYear[year] {
			label := ""
			if first {
				label = fmt.Sprintf("Year %d", year)
				first = false
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", label, line.Label, FormatKRW(line.Amount))
			subtotal += line.Amount
		}
		fmt.Fprintf(&b, "| **Year %d subtotal** | | **%s** |\n", year, FormatKRW(subtotal))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Total Estimated Benefit: %s KRW\n", FormatKRW(result.GrandTotal))
	if result.Explanation != "" {
		fmt.Fprintf(&b, "\n%s\n", result.Explanation)
	}
	return b.String()
}

type coverageRow struct {
	insurer string
	rider   string
	amount  int64
}

func coverageRows(plan domain.TreatmentPlan) []coverageRow {
	s, k := plan.Samsung, plan.KB
	return []coverageRow{
		{"Samsung Life", "Cancer major treatment", s.MajorTreatment},
		{"Samsung Life", "Thyroid/other skin cancer major treatment", s.MinorMajorTreatment},
		{"Samsung Life", "Cancer direct treatment", s.DirectTreatment},
		{"Samsung Life", "Thyroid/other skin cancer direct treatment", s.MinorDirectTreatment},
		{"Samsung Life", "Tertiary hospital cancer direct treatment", s.TertiaryHospital},
		{"Samsung Life", "Tertiary hospital thyroid/other skin cancer direct treatment", s.MinorTertiaryHospital},
		{"Samsung Life", "Premium cancer direct treatment", s.PremiumTreatment},
		{"Samsung Life", "First radiation therapy", s.FirstRadiation},
		{"Samsung Life", "First chemotherapy drug", s.FirstChemoDrug},
		{"Samsung Life", "First carbon-ion therapy", s.FirstCarbonIon},
		{"KB Insurance", "Cancer major treatment", k.MajorTreatment},
		{"KB Insurance", "Similar cancer major treatment", k.MinorMajorTreatment},
		{"KB Insurance", "Non-covered cancer major treatment II", k.NonCoveredMajor},
		{"KB Insurance", "Non-covered chemotherapy drug II", k.NonCoveredDrug},
		{"KB Insurance", "First radiation therapy", k.FirstRadiation},
		{"KB Insurance", "First chemotherapy drug", k.FirstChemoDrug},
		{"KB Insurance", "First carbon-ion therapy", k.FirstCarbonIon},
	}
}
