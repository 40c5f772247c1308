package constvars

const (
	SuccessResolveIdentifier = "Patient identifier resolved"
	SuccessGetPatient        = "Successfully retrieved patient record"
)
