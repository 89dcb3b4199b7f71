package http

import (
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"benefit-calculator/domain"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type indexData struct {
	Insurers   []domain.Insurer
	RiderTypes []domain.RiderType
	Diagnoses  []domain.DiagnosisCategory
}

type IndexHandler struct {
	logger *zap.Logger
}

func NewIndexHandler(logger *zap.Logger) *IndexHandler {
	return &IndexHandler{logger: logger}
}

// ServeForm handles GET / and renders the consultation form.
func (h *IndexHandler) ServeForm(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data := indexData{
		Insurers: []domain.Insurer{
			domain.InsurerSamsungLife, domain.InsurerKBInsurance,
		},
		RiderTypes: []domain.RiderType{
			domain.RiderGeneralCancer, domain.RiderMinorCancer,
			domain.RiderPremiumTreatment, domain.RiderFirstRadiation,
			domain.RiderFirstChemoDrug, domain.RiderFirstCarbonIon,
		},
		Diagnoses: []domain.DiagnosisCategory{
			domain.DiagnosisEarlyStage, domain.DiagnosisGeneralStage,
			domain.DiagnosisAdvancedStage, domain.DiagnosisCarcinomaInSitu,
		},
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		h.logger.Error("failed to render form page", zap.Error(err))
	}
}
