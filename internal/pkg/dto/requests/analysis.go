package requests

// PatientData is the immutable attribute snapshot submitted for analysis.
// Age is a pointer so a missing field is distinguishable from age zero.
type PatientData struct {
	Name        string   `json:"name" validate:"required"`
	Age         *int     `json:"age" validate:"required,gte=0"`
	BloodType   string   `json:"bloodType" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies   []string `json:"allergies"`
	Medications []string `json:"medications"`
	Conditions  []string `json:"conditions"`
}

type AnalysisRequest struct {
	PatientData *PatientData `json:"patientData"`
}
