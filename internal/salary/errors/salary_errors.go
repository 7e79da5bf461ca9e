package salaryerrors

import (
	"go-salary/internal/shared/apperror"
	"net/http"
)

const (
	CodeEmailNotFound      = "EMAIL_NOT_FOUND"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeEmailAlreadyExists = "EMAIL_ALREADY_EXISTS"
)

var (
	// ErrEmailNotFound is a validation failure: the email field names no record.
	ErrEmailNotFound = apperror.New(
		CodeEmailNotFound,
		"The given data was invalid.",
		http.StatusUnprocessableEntity,
	).WithDetails(apperror.FieldErrors{"email": "The selected email is invalid."})

	ErrUserNotFound = apperror.New(
		CodeUserNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrEmailAlreadyExists = apperror.New(
		CodeEmailAlreadyExists,
		"A salary record with this email already exists",
		http.StatusConflict,
	)
)
