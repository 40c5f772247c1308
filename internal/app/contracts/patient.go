package contracts

import (
	"context"

	"github.com/Maitreya20/care-tap-ai/internal/app/models"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/dto/responses"
)

type PatientRepository interface {
	GetPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
}

type PatientUsecase interface {
	ResolveIdentifier(rawInput string) (*responses.ResolveIdentifier, error)
	GetPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
}
