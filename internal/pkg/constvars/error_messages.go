package constvars

// Error messages for clients. The analysis endpoint contract fixes these
// strings; clients match on them.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application"
	ErrClientCannotProcessRequest          = "Cannot process the request"

	ErrClientAuthorizationRequired = "Authorization required"
	ErrClientInvalidAuthentication = "Invalid authentication"

	ErrClientRateLimitExceeded = "Rate limit exceeded. Please wait before requesting another analysis."

	ErrClientFailedToVerifyUserRole = "Failed to verify user role"
	ErrClientInsufficientPermission = "Insufficient permissions to request AI analysis"

	ErrClientPatientDataRequired        = "Patient data required"
	ErrClientInvalidPatientData         = "Invalid patient data structure"
	ErrClientInvalidPatientIdentifier   = "Invalid patient identifier"
	ErrClientPatientNotFound            = "Patient record not found"
	ErrClientAIServiceRateLimitExceeded = "AI service rate limit exceeded. Please try again later."
	ErrClientAIServicePaymentRequired   = "AI service payment required. Please check the provider account."
	ErrClientAIAnalysisFailed           = "AI analysis failed"
	ErrClientFailedToParseAIAnalysis    = "Failed to parse AI analysis"

	ErrClientMessagesRequired   = "Messages required"
	ErrClientTooManyMessages    = "Too many messages in conversation"
	ErrClientMessageTooLong     = "Message content exceeds maximum length"
	ErrClientInvalidMessageRole = "Invalid message role"
	ErrClientChatFailed         = "Chat request failed"
)

// Error messages for developers, logged but never sent to production clients.
const (
	ErrDevValidationFailed = "request validation failed"
	ErrDevCannotParseJSON  = "failed to parse JSON request body"

	ErrDevAuthTokenMissing          = "authorization header is missing"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or expired"
	ErrDevAuthSigningMethod         = "unexpected token signing method"
	ErrDevAuthSubjectMissing        = "token has no subject claim"

	ErrDevIdentifierNotUUID     = "input is not a UUID nor a patient URL"
	ErrDevIdentifierBadURLShape = "URL path does not match /patient/<uuid>"

	ErrDevRoleFetchFailed        = "failed to fetch user roles from store"
	ErrDevRoleNotPrivileged      = "user holds no privileged role"
	ErrDevRateLimitStoreFailure  = "rate limit backend failure"
	ErrDevRateLimitQuotaExceeded = "user exhausted the fixed-window quota"

	ErrDevPatientDataMissingFields = "patient data is missing required fields"

	ErrDevInferenceBuildRequest   = "failed to build inference request"
	ErrDevInferenceSendRequest    = "failed to send inference request"
	ErrDevInferenceUpstreamStatus = "inference endpoint returned non-OK status: %d"
	ErrDevInferenceEmptyChoice    = "inference endpoint returned no choices"
	ErrDevAnalysisNotJSON         = "model output is not valid JSON"
	ErrDevAnalysisBadShape        = "model output failed structural validation: %s"

	ErrDevDBFailedToFindDocument   = "failed to find document in database"
	ErrDevDBFailedToInsertDocument = "failed to insert document into database"

	ErrDevRedisIncrement = "failed to increment redis key"
	ErrDevRedisGet       = "failed to get redis key: %s"
	ErrDevRedisSet       = "failed to set redis key"
	ErrDevRedisDelete    = "failed to delete redis key"

	ErrDevCannotMarshalJSON = "failed to marshal JSON"
)
