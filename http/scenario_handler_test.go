package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"benefit-calculator/domain"
	"benefit-calculator/service"
)

func newScenarioHandler() *ScenarioHandler {
	svc := service.NewScenarioService(nil, zap.NewNop())
	return NewScenarioHandler(svc, zap.NewNop())
}

func TestSimulatePlanHandler_OK(t *testing.T) {

	handler := newScenarioHandler()

	body := []byte(`{
		"customer": "Hong Gildong",
		"minor_cancer": false,
		"samsung": {"major_treatment": 10000000},
		"kb": {"major_treatment": 8000000},
		"events_by_year": {
			"1": ["surgery"],
			"2": ["radiation"]
		}
	}`)

	req := httptest.NewRequest(http.MethodPost, "/benefit/scenario", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.SimulatePlan(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.PlanResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// Two treatment years firing the major riders of both insurers.
	if result.SamsungTotal != 20_000_000 {
		t.Errorf("expected samsung total 20000000, got %d", result.SamsungTotal)
	}
	if result.KBTotal != 16_000_000 {
		t.Errorf("expected kb total 16000000, got %d", result.KBTotal)
	}
	if result.GrandTotal != result.SamsungTotal+result.KBTotal {
		t.Errorf("grand total mismatch: %d", result.GrandTotal)
	}
}

func TestSimulatePlanHandler_MethodNotAllowed(t *testing.T) {

	handler := newScenarioHandler()

	req := httptest.NewRequest(http.MethodGet, "/benefit/scenario", nil)
	w := httptest.NewRecorder()

	handler.SimulatePlan(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestSimulatePlanHandler_InvalidPlan(t *testing.T) {

	handler := newScenarioHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/benefit/scenario",
		bytes.NewBuffer([]byte(`{"events_by_year": {}}`)),
	)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.SimulatePlan(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSimulatePlanHandler_UnsupportedMediaType(t *testing.T) {

	handler := newScenarioHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/benefit/scenario",
		bytes.NewBuffer([]byte(`{}`)),
	)
	req.Header.Set("Content-Type", "text/plain")

	w := httptest.NewRecorder()
	handler.SimulatePlan(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}
