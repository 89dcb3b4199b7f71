package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"benefit-calculator/domain"
	"benefit-calculator/service"
)

type ProposalHandler struct {
	service *service.ProposalService
	logger  *zap.Logger
}

func NewProposalHandler(service *service.ProposalService, logger *zap.Logger) *ProposalHandler {
	return &ProposalHandler{service: service, logger: logger}
}

// DownloadProposal handles POST /benefit/proposal and streams the rendered
// PDF as an attachment.
func (h *ProposalHandler) DownloadProposal(w http.ResponseWriter, r *http.Request) {
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
		h.logger.Warn("failed to decode proposal request", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	pdf, err := h.service.RenderPDF(r.Context(), plan)
	if err != nil {
		h.logger.Warn("proposal rendering failed", zap.Error(err))
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="proposal.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		h.logger.Warn("failed to write proposal response", zap.Error(err))
	}
}
