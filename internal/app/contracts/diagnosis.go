package contracts

import (
	"context"

	"github.com/Maitreya20/care-tap-ai/internal/app/models"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/dto/requests"
)

type DiagnosisUsecase interface {
	RequestAnalysis(ctx context.Context, userID string, request *requests.AnalysisRequest) (*models.DiagnosisResult, error)
}

type ChatUsecase interface {
	SendMessage(ctx context.Context, userID string, request *requests.ChatRequest) (string, error)
}
