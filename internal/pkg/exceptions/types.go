package exceptions

import (
	"fmt"

	"github.com/Maitreya20/care-tap-ai/internal/pkg/constvars"
)

var (
	// Authentication
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientAuthorizationRequired, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidAuthentication, constvars.ErrDevAuthTokenInvalidOrExpired)
	}

	// Authorization
	ErrRoleFetchFailed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientFailedToVerifyUserRole, constvars.ErrDevRoleFetchFailed)
	}
	ErrInsufficientPermission = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientInsufficientPermission, constvars.ErrDevRoleNotPrivileged)
	}

	// Rate limiting
	ErrRateLimitExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientRateLimitExceeded, constvars.ErrDevRateLimitQuotaExceeded)
	}
	ErrRateLimitBackend = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRateLimitStoreFailure)
	}

	// Input validation
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrPatientDataRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientPatientDataRequired, constvars.ErrDevPatientDataMissingFields)
	}
	ErrInvalidPatientData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidPatientData, constvars.ErrDevPatientDataMissingFields)
	}
	ErrInvalidPatientIdentifier = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidPatientIdentifier, constvars.ErrDevIdentifierNotUUID)
	}

	// Chat input
	ErrMessagesRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientMessagesRequired, constvars.ErrDevValidationFailed)
	}
	ErrTooManyMessages = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientTooManyMessages, constvars.ErrDevValidationFailed)
	}
	ErrMessageTooLong = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientMessageTooLong, constvars.ErrDevValidationFailed)
	}
	ErrInvalidMessageRole = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidMessageRole, constvars.ErrDevValidationFailed)
	}

	// Upstream inference provider
	ErrAIUpstreamRateLimited = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientAIServiceRateLimitExceeded, fmt.Sprintf(constvars.ErrDevInferenceUpstreamStatus, constvars.StatusTooManyRequests))
	}
	ErrAIUpstreamPaymentRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusPaymentRequired, constvars.ErrClientAIServicePaymentRequired, fmt.Sprintf(constvars.ErrDevInferenceUpstreamStatus, constvars.StatusPaymentRequired))
	}
	ErrAIAnalysisFailed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientAIAnalysisFailed, constvars.ErrDevInferenceSendRequest)
	}
	ErrAIAnalysisNotParseable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientFailedToParseAIAnalysis, constvars.ErrDevAnalysisNotJSON)
	}
	ErrAIAnalysisBadShape = func(reason string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientFailedToParseAIAnalysis, fmt.Sprintf(constvars.ErrDevAnalysisBadShape, reason))
	}
	ErrChatFailed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientChatFailed, constvars.ErrDevInferenceSendRequest)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrPatientNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientPatientNotFound, constvars.ErrDevDBFailedToFindDocument)
	}

	// Redis
	ErrRedisIncrement = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisIncrement)
	}
	ErrRedisGetNoData = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGet, key))
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}

	// Marshalling
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
)
