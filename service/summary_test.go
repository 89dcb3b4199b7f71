package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"benefit-calculator/domain"
)

func TestFormatKRW(t *testing.T) {
	assert.Equal(t, "3,000,000", FormatKRW(3_000_000))
	assert.Equal(t, "0", FormatKRW(0))
}

func TestRenderSummary(t *testing.T) {
	result := domain.BenefitResult{
		Insurer:           domain.InsurerSamsungLife,
		RiderType:         domain.RiderGeneralCancer,
		DiagnosisCategory: domain.DiagnosisEarlyStage,
		LineItems: []domain.LineItem{
			{Label: "Samsung general cancer diagnosis (early stage)", Amount: 3_000_000},
		},
		Total: 3_000_000,
	}

	summary := RenderSummary(result)

	assert.Contains(t, summary, "Samsung general cancer diagnosis (early stage)")
	assert.Contains(t, summary, "3,000,000")
	assert.Contains(t, summary, "Total estimated benefit")
	assert.Equal(t, 2, strings.Count(summary, "\n"))
}

func TestRenderSummaryIsPure(t *testing.T) {
	result := domain.BenefitResult{
		LineItems: []domain.LineItem{{Label: "x", Amount: 1}},
		Total:     1,
	}
	assert.Equal(t, RenderSummary(result), RenderSummary(result))
}
