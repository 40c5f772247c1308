package responses

import "github.com/Maitreya20/care-tap-ai/internal/app/models"

// Analysis is the success body of the analysis endpoint; the shape is part of
// the client contract.
type Analysis struct {
	Analysis *models.DiagnosisResult `json:"analysis"`
}

type Chat struct {
	Message string `json:"message"`
}

type ResolveIdentifier struct {
	PatientID string `json:"patientId"`
}
