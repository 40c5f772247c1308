package routers

import (
	"github.com/Maitreya20/care-tap-ai/internal/app/delivery/http/middlewares"
	"github.com/Maitreya20/care-tap-ai/internal/app/services/core/patients"
	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.With(middlewares.Authenticate).Post("/resolve", patientController.ResolveIdentifier)
	router.With(middlewares.Authenticate).Get("/{patientID}", patientController.GetPatientByID)
}
