package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrTooManyRequests = New(
		CodeTooManyRequests,
		"Too many requests, slow down",
		http.StatusTooManyRequests,
	)
)

// RequiredField reports a missing request field, e.g. "Date Of Birth is required".
func RequiredField(field string) *AppError {
	return New(CodeValidation, field+" is required", http.StatusBadRequest)
}

// InvalidField reports a present but malformed request field.
func InvalidField(field string) *AppError {
	return New(CodeValidation, field+" is invalid", http.StatusBadRequest)
}
