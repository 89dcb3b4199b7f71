package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"benefit-calculator/domain"
	"benefit-calculator/repository"
	"benefit-calculator/rules"
	"benefit-calculator/service"
)

func newBenefitHandler(t *testing.T) *BenefitHandler {
	t.Helper()
	table, err := rules.Default()
	if err != nil {
		t.Fatalf("failed to load default rules: %v", err)
	}
	svc := service.NewBenefitService(
		table,
		repository.NewQuoteRepositoryMemory(),
		repository.NewMockCache(),
		zap.NewNop(),
	)
	return NewBenefitHandler(svc, zap.NewNop())
}

func TestCalculateBenefitHandler_OK(t *testing.T) {

	handler := newBenefitHandler(t)

	body := []byte(`{
		"insurer": "samsung_life",
		"rider_type": "general_cancer",
		"diagnosis_category": "early_stage",
		"coverage_amount": 10000000,
		"policy_start_date": "2023-01-01",
		"as_of": "2025-01-01"
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/benefit/calculate",
		bytes.NewBuffer(body),
	)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()

	handler.CalculateBenefit(w, req)

	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, w.Body.String())
	}

	var result domain.BenefitResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Total != 3_000_000 {
		t.Errorf("expected total 3000000, got %d", result.Total)
	}
}

func TestCalculateBenefitHandler_MethodNotAllowed(t *testing.T) {

	handler := newBenefitHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/benefit/calculate", nil)
	w := httptest.NewRecorder()

	handler.CalculateBenefit(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestCalculateBenefitHandler_BadRequest(t *testing.T) {

	handler := newBenefitHandler(t)

	req := httptest.NewRequest(
		http.MethodPost,
		"/benefit/calculate",
		bytes.NewBuffer([]byte(`{invalid-json}`)),
	)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.CalculateBenefit(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCalculateBenefitHandler_UnsupportedMediaType(t *testing.T) {

	handler := newBenefitHandler(t)

	req := httptest.NewRequest(
		http.MethodPost,
		"/benefit/calculate",
		bytes.NewBuffer([]byte(`{}`)),
	)
	req.Header.Set("Content-Type", "text/plain")

	w := httptest.NewRecorder()
	handler.CalculateBenefit(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}

func TestCalculateBenefitHandler_UnsupportedCombination(t *testing.T) {

	handler := newBenefitHandler(t)

	body := []byte(`{
		"insurer": "samsung_life",
		"rider_type": "premium_treatment",
		"diagnosis_category": "early_stage",
		"coverage_amount": 10000000,
		"policy_start_date": "2023-01-01",
		"as_of": "2025-01-01"
	}`)

	req := httptest.NewRequest(http.MethodPost, "/benefit/calculate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.CalculateBenefit(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
}

func TestCalculateBenefitHandler_InvalidCoverage(t *testing.T) {

	handler := newBenefitHandler(t)

	body := []byte(`{
		"insurer": "samsung_life",
		"rider_type": "general_cancer",
		"diagnosis_category": "early_stage",
		"coverage_amount": 0,
		"policy_start_date": "2023-01-01"
	}`)

	req := httptest.NewRequest(http.MethodPost, "/benefit/calculate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.CalculateBenefit(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
