package apperrors

import "net/http"

// Login failures map to fixed user-facing strings so the UI can show them
// verbatim. Anything not covered below falls back to ErrLoginFailed.
var (
	ErrInvalidEmailFormat = New(CodeValidationFailed, "auth", "Invalid email format.", http.StatusBadRequest)
	ErrAccountDisabled    = New(CodeForbidden, "auth", "This account has been disabled.", http.StatusForbidden)
	ErrAccountNotFound    = New(CodeNotFound, "auth", "No account found with this email.", http.StatusUnauthorized)
	ErrWrongPassword      = New(CodeInvalidCredentials, "auth", "Incorrect password.", http.StatusUnauthorized)
	ErrTooManyAttempts    = New(CodeTooManyRequests, "auth", "Too many failed attempts. Try again later.", http.StatusTooManyRequests)
	ErrLoginFailed        = New(CodeInternal, "auth", "Login failed. Please try again.", http.StatusInternalServerError)
)

// Upload validation errors, in the order the checks run.
var (
	ErrFileRequired    = New(CodeValidationFailed, "portfolio", "Please select an image file.", http.StatusBadRequest)
	ErrInvalidFileType = New(CodeValidationFailed, "portfolio", "Only JPG, PNG, GIF and WEBP images are allowed.", http.StatusBadRequest)
	ErrFileTooLarge    = New(CodeValidationFailed, "portfolio", "File size must be under 10MB.", http.StatusBadRequest)
	ErrTitleRequired   = New(CodeValidationFailed, "portfolio", "Title and category are required.", http.StatusBadRequest)
)

var (
	ErrWorkNotFound    = New(CodeNotFound, "portfolio", "Work not found.", http.StatusNotFound)
	ErrMessageNotFound = New(CodeNotFound, "messages", "Message not found.", http.StatusNotFound)
)
