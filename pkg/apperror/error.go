package apperror

import (
	"errors"
	"net/http"
)

// AppError is an error that knows how it should be presented to an API client.
// Err holds the internal cause and is never sent over the wire.
type AppError struct {
	Code    int         `json:"-"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Err     error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation reports malformed input; details usually maps field name to problem.
func Validation(message string, details interface{}) *AppError {
	e := New(http.StatusBadRequest, message, nil)
	e.Details = details
	return e
}

// UnsupportedMedia is reported as 400 to match the upload contract.
func UnsupportedMedia(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, message, nil)
}

// Upstream marks a failure of the external advisory service. The user may retry.
func Upstream(message string, err error) *AppError {
	return New(http.StatusBadGateway, message, err)
}

// Storage marks a document or blob store failure.
func Storage(err error) *AppError {
	return New(http.StatusInternalServerError, "Server error", err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}

// CodeOf returns the HTTP status carried by err, or 500 when err is not an AppError.
func CodeOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
