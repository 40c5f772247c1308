package patients

import (
	"context"
	"time"

	"github.com/Maitreya20/care-tap-ai/internal/app/contracts"
	"github.com/Maitreya20/care-tap-ai/internal/app/models"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/dto/responses"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/exceptions"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/utils"
)

type patientUsecase struct {
	patientRepository contracts.PatientRepository
	storeTimeout      time.Duration
}

func NewPatientUsecase(patientRepository contracts.PatientRepository, storeTimeout time.Duration) contracts.PatientUsecase {
	return &patientUsecase{
		patientRepository: patientRepository,
		storeTimeout:      storeTimeout,
	}
}

func (u *patientUsecase) ResolveIdentifier(rawInput string) (*responses.ResolveIdentifier, error) {
	patientID, err := utils.ExtractPatientIdentifier(rawInput)
	if err != nil {
		return nil, err
	}
	return &responses.ResolveIdentifier{PatientID: patientID}, nil
}

func (u *patientUsecase) GetPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	canonicalID, err := utils.ExtractPatientIdentifier(patientID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	patient, err := u.patientRepository.GetPatientByID(ctx, canonicalID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return patient, nil
}
