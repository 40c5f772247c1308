package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Maitreya20/care-tap-ai/internal/app/config"
	"github.com/Maitreya20/care-tap-ai/internal/app/contracts"
	"github.com/Maitreya20/care-tap-ai/internal/app/delivery/http/middlewares"
	"github.com/Maitreya20/care-tap-ai/internal/app/delivery/http/routers"
	"github.com/Maitreya20/care-tap-ai/internal/app/drivers/database"
	"github.com/Maitreya20/care-tap-ai/internal/app/drivers/logger"
	"github.com/Maitreya20/care-tap-ai/internal/app/drivers/messaging"
	"github.com/Maitreya20/care-tap-ai/internal/app/services/core/chat"
	"github.com/Maitreya20/care-tap-ai/internal/app/services/core/diagnosis"
	"github.com/Maitreya20/care-tap-ai/internal/app/services/core/patients"
	"github.com/Maitreya20/care-tap-ai/internal/app/services/core/users"
	"github.com/Maitreya20/care-tap-ai/internal/app/services/shared/audit"
	"github.com/Maitreya20/care-tap-ai/internal/app/services/shared/inference"
	"github.com/Maitreya20/care-tap-ai/internal/app/services/shared/ratelimiter"
	"github.com/Maitreya20/care-tap-ai/internal/app/services/shared/redis"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/constvars"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	<-shutdownCtx.Done()

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	storeTimeout := time.Duration(bootstrap.InternalConfig.App.StoreTimeoutInSeconds) * time.Second
	rateWindow := time.Duration(bootstrap.InternalConfig.App.DiagnosisRateWindowSeconds) * time.Second

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Rate limiter for the inference endpoints
	var userRateLimiter contracts.UserRateLimiter
	switch bootstrap.InternalConfig.App.RateLimiterBackend {
	case constvars.RateLimiterBackendRedis:
		userRateLimiter = ratelimiter.NewRedisRateLimiter(
			redisRepository,
			bootstrap.ZapLogger,
			bootstrap.InternalConfig.App.DiagnosisRateLimit,
			rateWindow,
		)
	default:
		userRateLimiter = ratelimiter.NewMemoryRateLimiter(
			bootstrap.InternalConfig.App.DiagnosisRateLimit,
			rateWindow,
		)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, bootstrap.InternalConfig)

	// Inference
	inferenceClient := inference.NewOpenAIClient(bootstrap.InternalConfig.AI)

	// User
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	roleGate := users.NewRoleGate(userMongoRepository, storeTimeout, bootstrap.ZapLogger)

	// Audit
	auditMongoRepository := audit.NewAuditMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	auditPublisher, err := audit.NewAuditPublisher(bootstrap.RabbitMQ, bootstrap.ZapLogger)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to initialize audit publisher: %v", err)
	}
	auditService := audit.NewAuditService(auditMongoRepository, auditPublisher, bootstrap.ZapLogger)

	// Diagnosis
	diagnosisUsecase := diagnosis.NewDiagnosisUsecase(
		userRateLimiter,
		roleGate,
		inferenceClient,
		auditService,
		bootstrap.ZapLogger,
	)
	diagnosisController := diagnosis.NewDiagnosisController(diagnosisUsecase, bootstrap.ZapLogger)

	// Chat
	chatUsecase := chat.NewChatUsecase(userRateLimiter, inferenceClient, bootstrap.ZapLogger)
	chatController := chat.NewChatController(chatUsecase, bootstrap.ZapLogger)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, storeTimeout)
	patientController := patients.NewPatientController(patientUsecase, bootstrap.ZapLogger)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		diagnosisController,
		chatController,
		patientController,
	)
}
