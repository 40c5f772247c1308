package routers

import (
	"fmt"
	"time"

	"github.com/Maitreya20/care-tap-ai/internal/app/config"
	"github.com/Maitreya20/care-tap-ai/internal/app/delivery/http/middlewares"
	"github.com/Maitreya20/care-tap-ai/internal/app/services/core/chat"
	"github.com/Maitreya20/care-tap-ai/internal/app/services/core/diagnosis"
	"github.com/Maitreya20/care-tap-ai/internal/app/services/core/patients"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	diagnosisController *diagnosis.DiagnosisController,
	chatController *chat.ChatController,
	patientController *patients.PatientController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Coarse per-IP cap across the whole API; the per-user inference limiter
	// lives in the usecases.
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/analysis", func(r chi.Router) {
				attachAnalysisRoutes(r, middlewares, diagnosisController)
			})

			r.Route("/chat", func(r chi.Router) {
				attachChatRoutes(r, middlewares, chatController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController)
			})
		})
	})
}
