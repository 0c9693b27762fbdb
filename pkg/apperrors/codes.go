package apperrors

// ErrorCode is a stable machine-readable error identifier. HTTP status codes
// are carried separately so the same code can surface on different statuses.
type ErrorCode string

const (
	CodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeConflict           ErrorCode = "CONFLICT"
	CodeTooManyRequests    ErrorCode = "TOO_MANY_REQUESTS"
	CodeStorageFailure     ErrorCode = "STORAGE_FAILURE"
	CodeEmailFailure       ErrorCode = "EMAIL_FAILURE"
	CodeDatabaseError      ErrorCode = "DATABASE_ERROR"
	CodeInternal           ErrorCode = "INTERNAL_ERROR"
)
