package employeeerrors

import (
	"employee-directory/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidSortKey = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid sort key, expected name or address",
		http.StatusBadRequest,
	)
	ErrEmptyUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"At least one field must be provided",
		http.StatusBadRequest,
	)
	ErrInvalidGender = apperror.New(
		apperror.CodeInvalidInput,
		"Gender must be one of Male, Female, Other",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInternalError,
		"Employee ID must not be empty",
		http.StatusInternalServerError,
	)
	ErrDuplicateEmployeeID = apperror.New(
		apperror.CodeInternalError,
		"Employee ID already issued",
		http.StatusInternalServerError,
	)
	ErrIDGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Could not allocate a unique employee ID",
		http.StatusInternalServerError,
	)
)
