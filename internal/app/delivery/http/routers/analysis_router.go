package routers

import (
	"github.com/Maitreya20/care-tap-ai/internal/app/delivery/http/middlewares"
	"github.com/Maitreya20/care-tap-ai/internal/app/services/core/diagnosis"
	"github.com/go-chi/chi/v5"
)

func attachAnalysisRoutes(router chi.Router, middlewares *middlewares.Middlewares, diagnosisController *diagnosis.DiagnosisController) {
	router.With(middlewares.Authenticate).Post("/", diagnosisController.RequestAnalysis)
}
