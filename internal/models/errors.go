package models

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a business-rule violation carrying the HTTP status it maps to.
// Anything that is not an AppError is treated as an internal error at the
// handler boundary and never leaks detail to the client.
type AppError struct {
	Status        int
	Message       string
	MissingFields []string
	Err           error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

// NewMissingFieldsError is the onboarding variant of a validation error: the
// response lists which fields were absent.
func NewMissingFieldsError(fields []string) *AppError {
	return &AppError{
		Status:        http.StatusBadRequest,
		Message:       "All fields are required",
		MissingFields: fields,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

func NewInvalidCredentialsError(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Status: http.StatusForbidden, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Message: message}
}

// AsAppError unwraps err to an AppError if there is one in the chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
