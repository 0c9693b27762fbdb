package apperrors

import (
	"fmt"
	"net/http"
)

// AppError is the error type every layer below the handlers returns for
// expected failures. Message is safe to show to a user; Err keeps the cause
// for logs.
type AppError struct {
	Code     ErrorCode `json:"code"`
	Domain   string    `json:"domain,omitempty"`
	Message  string    `json:"message"`
	Details  any       `json:"details,omitempty"`
	HTTPCode int       `json:"-"`
	Err      error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s [%s]: %s: %v", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Domain, e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{Code: code, Domain: domain, Message: message, HTTPCode: httpCode}
}

func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{Code: code, Domain: domain, Message: message, HTTPCode: httpCode, Err: err}
}

// WithDetails returns a copy so that shared sentinel errors stay immutable.
func (e *AppError) WithDetails(details any) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// WithErr returns a copy carrying the underlying cause.
func (e *AppError) WithErr(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

func NewBadRequest(domain, message string) *AppError {
	return New(CodeValidationFailed, domain, message, http.StatusBadRequest)
}

func NewNotFound(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

func NewUnauthorized(domain, message string) *AppError {
	return New(CodeUnauthorized, domain, message, http.StatusUnauthorized)
}

func NewInternal(domain, message string, err error) *AppError {
	return Wrap(err, CodeInternal, domain, message, http.StatusInternalServerError)
}
