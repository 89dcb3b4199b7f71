package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"benefit-calculator/domain"
	"benefit-calculator/service"
)

type BenefitHandler struct {
	service *service.BenefitService
	logger  *zap.Logger
}

func NewBenefitHandler(service *service.BenefitService, logger *zap.Logger) *BenefitHandler {
	return &BenefitHandler{service: service, logger: logger}
}

// CalculateBenefit handles POST /benefit/calculate.
func (h *BenefitHandler) CalculateBenefit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.PolicyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("failed to decode benefit request", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.ComputeBenefit(input)
	if err != nil {
		h.logger.Warn("benefit computation rejected", zap.Error(err))
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	response := struct {
		domain.BenefitResult
		Summary string `json:"summary"`
	}{
		BenefitResult: result,
		Summary:       service.RenderSummary(result),
	}

	// Encode into a buffer first so a failure never follows a 200 header.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(response); err != nil {
		h.logger.Error("failed to encode benefit response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write benefit response", zap.Error(err))
	}
}
