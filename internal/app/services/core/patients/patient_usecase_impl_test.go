package patients

import (
	"context"
	"testing"
	"time"

	"github.com/Maitreya20/care-tap-ai/internal/app/models"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/constvars"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/exceptions"
	"github.com/stretchr/testify/assert"
)

type stubPatientRepository struct {
	patient *models.Patient
	err     error
	lastID  string
}

func (s *stubPatientRepository) GetPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	s.lastID = patientID
	return s.patient, s.err
}

func TestResolveIdentifier(t *testing.T) {
	usecase := NewPatientUsecase(&stubPatientRepository{}, 10*time.Second)

	t.Run("Bare UUID", func(t *testing.T) {
		response, err := usecase.ResolveIdentifier("3f2504e0-4f89-41d3-9a0c-0305e82c3301")

		assert.NoError(t, err)
		assert.Equal(t, "3f2504e0-4f89-41d3-9a0c-0305e82c3301", response.PatientID)
	})

	t.Run("Patient URL", func(t *testing.T) {
		response, err := usecase.ResolveIdentifier("https://records.example.com/patient/3F2504E0-4F89-41D3-9A0C-0305E82C3301")

		assert.NoError(t, err)
		assert.Equal(t, "3f2504e0-4f89-41d3-9a0c-0305e82c3301", response.PatientID)
	})

	t.Run("Garbage Input", func(t *testing.T) {
		_, err := usecase.ResolveIdentifier("scan failed")

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestGetPatientByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		repository := &stubPatientRepository{patient: &models.Patient{
			ID:        "3f2504e0-4f89-41d3-9a0c-0305e82c3301",
			Name:      "Jordan Reyes",
			BloodType: models.BloodTypeOPositive,
		}}
		usecase := NewPatientUsecase(repository, 10*time.Second)

		patient, err := usecase.GetPatientByID(ctx, "3f2504e0-4f89-41d3-9a0c-0305e82c3301")

		assert.NoError(t, err)
		assert.Equal(t, "Jordan Reyes", patient.Name)
	})

	t.Run("Identifier Is Canonicalized Before Lookup", func(t *testing.T) {
		repository := &stubPatientRepository{patient: &models.Patient{ID: "3f2504e0-4f89-41d3-9a0c-0305e82c3301"}}
		usecase := NewPatientUsecase(repository, 10*time.Second)

		_, err := usecase.GetPatientByID(ctx, "3F2504E0-4F89-41D3-9A0C-0305E82C3301")

		assert.NoError(t, err)
		assert.Equal(t, "3f2504e0-4f89-41d3-9a0c-0305e82c3301", repository.lastID)
	})

	t.Run("Not Found", func(t *testing.T) {
		usecase := NewPatientUsecase(&stubPatientRepository{}, 10*time.Second)

		_, err := usecase.GetPatientByID(ctx, "3f2504e0-4f89-41d3-9a0c-0305e82c3301")

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientPatientNotFound, customErr.ClientMessage)
	})

	t.Run("Invalid Identifier Skips The Store", func(t *testing.T) {
		repository := &stubPatientRepository{}
		usecase := NewPatientUsecase(repository, 10*time.Second)

		_, err := usecase.GetPatientByID(ctx, "not-a-uuid")

		assert.Error(t, err)
		assert.Empty(t, repository.lastID, "the store must not be queried with an unvalidated identifier")
	})
}
