package diagnosis

import (
	"context"
	"time"

	"github.com/Maitreya20/care-tap-ai/internal/app/contracts"
	"github.com/Maitreya20/care-tap-ai/internal/app/models"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/constvars"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/dto/requests"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/exceptions"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type diagnosisUsecase struct {
	rateLimiter     contracts.UserRateLimiter
	roleGate        contracts.RoleGate
	inferenceClient contracts.InferenceClient
	auditService    contracts.AuditService
	log             *zap.Logger
}

func NewDiagnosisUsecase(
	rateLimiter contracts.UserRateLimiter,
	roleGate contracts.RoleGate,
	inferenceClient contracts.InferenceClient,
	auditService contracts.AuditService,
	log *zap.Logger,
) contracts.DiagnosisUsecase {
	return &diagnosisUsecase{
		rateLimiter:     rateLimiter,
		roleGate:        roleGate,
		inferenceClient: inferenceClient,
		auditService:    auditService,
		log:             log,
	}
}

// RequestAnalysis runs one guarded diagnosis request. Guard order is fixed:
// rate check, role check, input validation; any failure short-circuits before
// the external inference call and skips the audit write.
func (u *diagnosisUsecase) RequestAnalysis(ctx context.Context, userID string, request *requests.AnalysisRequest) (*models.DiagnosisResult, error) {
	decision, err := u.rateLimiter.Allow(ctx, userID)
	if err != nil {
		return nil, exceptions.ErrRateLimitBackend(err)
	}
	if !decision.Allowed {
		return nil, exceptions.ErrRateLimitExceeded(nil)
	}

	if err := u.roleGate.Authorize(ctx, userID); err != nil {
		return nil, err
	}

	if request == nil || request.PatientData == nil {
		return nil, exceptions.ErrPatientDataRequired(nil)
	}
	if err := utils.ValidateStruct(request.PatientData); err != nil {
		return nil, exceptions.ErrInvalidPatientData(err)
	}

	rawResponse, err := u.inferenceClient.Complete(ctx, &contracts.CompletionInput{
		Messages: []contracts.InferenceMessage{
			{Role: "system", Content: analysisSystemPrompt},
			{Role: "user", Content: buildAnalysisUserPrompt(request.PatientData)},
		},
		JSONResponse: true,
	})
	if err != nil {
		return nil, err
	}

	result, err := ValidateAnalysisResponse(rawResponse)
	if err != nil {
		return nil, err
	}

	u.auditService.Record(ctx, &models.AuditLog{
		ID:     uuid.NewString(),
		UserID: userID,
		Action: constvars.AuditActionAIDiagnosis,
		Metadata: map[string]string{
			"patient_name": request.PatientData.Name,
			"triage_level": string(result.TriageLevel),
		},
		CreatedAt: time.Now().UTC(),
	})

	u.log.Info("diagnosisUsecase.RequestAnalysis completed",
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String("triage_level", string(result.TriageLevel)),
	)

	return result, nil
}
