package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"benefit-calculator/service"
)

type stubRenderer struct{}

func (stubRenderer) Render(_ context.Context, markdown string) ([]byte, error) {
	return []byte("%PDF-1.4 " + markdown[:20]), nil
}

func newProposalHandler() *ProposalHandler {
	scenario := service.NewScenarioService(nil, zap.NewNop())
	svc := service.NewProposalService(scenario, stubRenderer{}, zap.NewNop())
	return NewProposalHandler(svc, zap.NewNop())
}

func TestDownloadProposalHandler_OK(t *testing.T) {

	handler := newProposalHandler()

	body := []byte(`{
		"customer": "Hong Gildong",
		"samsung": {"major_treatment": 10000000},
		"events_by_year": {"1": ["surgery"]}
	}`)

	req := httptest.NewRequest(http.MethodPost, "/benefit/proposal", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.DownloadProposal(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "proposal.pdf") {
		t.Errorf("expected attachment disposition, got %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Errorf("expected PDF payload")
	}
}

func TestDownloadProposalHandler_InvalidPlan(t *testing.T) {

	handler := newProposalHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/benefit/proposal",
		bytes.NewBuffer([]byte(`{}`)),
	)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.DownloadProposal(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestDownloadProposalHandler_UnsupportedMediaType(t *testing.T) {

	handler := newProposalHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/benefit/proposal",
		bytes.NewBuffer([]byte(`{}`)),
	)
	req.Header.Set("Content-Type", "text/plain")

	w := httptest.NewRecorder()
	handler.DownloadProposal(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}

func TestDownloadProposalHandler_MethodNotAllowed(t *testing.T) {

	handler := newProposalHandler()

	req := httptest.NewRequest(http.MethodGet, "/benefit/proposal", nil)
	w := httptest.NewRecorder()

	handler.DownloadProposal(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}
