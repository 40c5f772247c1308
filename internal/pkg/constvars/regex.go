package constvars

const (
	// RegexUUID matches the canonical 36-character dashed form only; other
	// encodings (braced, urn-prefixed, undashed) are rejected.
	RegexUUID = `^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`

	// RegexPatientURLPath is the fixed shape a scanned patient URL must carry.
	RegexPatientURLPath = `^/patient/([0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12})$`
)
