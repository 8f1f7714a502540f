package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the client facing shape of any error returned by a service.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP resolves err to the status and code the handlers write back.
// Errors that are not AppErrors are reported as 500 without leaking the cause.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return HTTPError{
			Status:  status,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}
