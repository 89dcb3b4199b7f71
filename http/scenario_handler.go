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

type ScenarioHandler struct {
	service *service.ScenarioService
	logger  *zap.Logger
}

func NewScenarioHandler(service *service.ScenarioService, logger *zap.Logger) *ScenarioHandler {
	return &ScenarioHandler{service: service, logger: logger}
}

// SimulatePlan handles POST /benefit/scenario.
func (h *ScenarioHandler) SimulatePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var plan domain.TreatmentPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		h.logger.Warn("failed to decode scenario request", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.SimulatePlan(plan)
	if err != nil {
		h.logger.Warn("scenario simulation rejected", zap.Error(err))
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		h.logger.Error("failed to encode scenario response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write scenario response", zap.Error(err))
	}
}
