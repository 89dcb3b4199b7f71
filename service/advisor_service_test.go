package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"benefit-calculator/domain"
)

func TestExplainPlanFallbackWithoutAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	svc := NewAdvisorService(zap.NewNop())

	result := domain.PlanResult{
		SamsungTotal: 20_000_000,
		KBTotal:      10_000_000,
		GrandTotal:   30_000_000,
	}

	explanation := svc.ExplainPlan(domain.TreatmentPlan{Customer: "Hong Gildong"}, result)

	assert.Contains(t, explanation, "20,000,000")
	assert.Contains(t, explanation, "10,000,000")
	assert.Contains(t, explanation, "30,000,000")
	assert.Contains(t, explanation, "simulation")
}

func TestExplainPlanFallbackIsDeterministic(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	svc := NewAdvisorService(zap.NewNop())

	result := domain.PlanResult{GrandTotal: 1_000_000}
	plan := domain.TreatmentPlan{}

	assert.Equal(t, svc.ExplainPlan(plan, result), svc.ExplainPlan(plan, result))
}
