// Package apperr maps domain errors to HTTP responses.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vk/tombstone/internal/config"
	"github.com/vk/tombstone/internal/lang"
	"github.com/vk/tombstone/internal/resolver"
)

// ErrInvalidInput marks a malformed request body or parameter.
var ErrInvalidInput = errors.New("invalid input")

// AppError is an error with the HTTP status code it should be reported with.
type AppError struct {
	Code    int
	Message string
	Err     error
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

// New creates an AppError.
func New(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// MapError maps err to an AppError. Errors that are already AppErrors are
// returned as is; anything unrecognized becomes a 500.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, resolver.ErrDuplicateProgram):
		return New(http.StatusConflict, "Program already defined", err)
	case errors.Is(err, resolver.ErrUnknownProgram):
		return New(http.StatusNotFound, "Program not found", err)
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, lang.ErrInvalidName),
		errors.Is(err, lang.ErrInvalidProgramName),
		errors.Is(err, config.ErrInvalidDeclaration):
		return New(http.StatusBadRequest, "Invalid request", err)
	}
	return New(http.StatusInternalServerError, "Internal server error", err)
}
