// Package apperrors defines the error values returned by the service
// layer. Each error carries a machine code and the HTTP status the
// controllers should answer with.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeOwnership      = "OWNERSHIP_ERROR"
	CodeAuthorization  = "AUTHORIZATION_ERROR"
	CodeAuthentication = "AUTHENTICATION_ERROR"
	CodeConflict       = "CONFLICT"
	CodePersistence    = "PERSISTENCE_ERROR"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message, HTTPStatus: http.StatusBadRequest}
}

func NotFound(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: resource + " not found", HTTPStatus: http.StatusNotFound}
}

// Ownership denies access to a record the caller does not own. The
// message stays generic so it never confirms the record exists.
func Ownership(message string) *AppError {
	return &AppError{Code: CodeOwnership, Message: message, HTTPStatus: http.StatusForbidden}
}

func Authorization(message string) *AppError {
	return &AppError{Code: CodeAuthorization, Message: message, HTTPStatus: http.StatusForbidden}
}

func Authentication() *AppError {
	return &AppError{Code: CodeAuthentication, Message: "you must be signed in", HTTPStatus: http.StatusUnauthorized}
}

func Conflict(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message, HTTPStatus: http.StatusConflict}
}

// Persistence wraps a store failure. The underlying error is kept for
// logging; the surfaced message is always generic.
func Persistence(err error) *AppError {
	return &AppError{
		Code:       CodePersistence,
		Message:    "an internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// Is reports whether err is an AppError with the given code.
func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// As returns err as an AppError, wrapping unknown errors as persistence
// failures so controllers always have a status to answer with.
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Persistence(err)
}
