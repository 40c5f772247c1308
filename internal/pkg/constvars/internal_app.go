package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_UID                      ContextKey = "uid"
)

const (
	ResourcePatients = "patients"
	ResourceUsers    = "users"
	ResourceAnalysis = "analysis"
	ResourceChat     = "chat"
)

// Roles assigned to accounts in the record store. Clinician and Admin are the
// privileged roles allowed to request AI analysis and read every patient record.
const (
	CareTapRoleClinician = "clinician"
	CareTapRoleAdmin     = "admin"
	CareTapRolePatient   = "patient"
)

// Mongo collections
const (
	MongoCollectionPatients  = "patients"
	MongoCollectionUsers     = "users"
	MongoCollectionAuditLogs = "audit_logs"
)

// Audit action names
const (
	AuditActionAIDiagnosis = "ai_diagnosis"
)

const (
	RateLimiterBackendMemory = "memory"
	RateLimiterBackendRedis  = "redis"
)
