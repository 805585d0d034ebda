package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// ApiError is the error shape every handler returns to clients. Detail is
// for callers; anything sensitive stays in server logs.
type ApiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

var (
	ErrBadRequest   = func(detail string) *ApiError { return New(http.StatusBadRequest, "Bad Request", detail) }
	ErrUnauthorized = func(detail string) *ApiError { return New(http.StatusUnauthorized, "Unauthorized", detail) }
	ErrForbidden    = func(detail string) *ApiError { return New(http.StatusForbidden, "Forbidden", detail) }
	ErrNotFound     = func(detail string) *ApiError { return New(http.StatusNotFound, "Not Found", detail) }
	ErrConflict     = func(detail string) *ApiError { return New(http.StatusConflict, "Conflict", detail) }
	ErrInternal     = func(detail string) *ApiError {
		return New(http.StatusInternalServerError, "Internal Server Error", detail)
	}
	ErrServiceUnavailable = func(detail string) *ApiError {
		return New(http.StatusServiceUnavailable, "Service Unavailable", detail)
	}
)

func New(code int, message, detail string) *ApiError {
	return &ApiError{
		Code:    code,
		Message: message,
		Detail:  detail,
	}
}

func (e *ApiError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

func (e *ApiError) StatusCode() int {
	return e.Code
}

// From normalizes any error into an ApiError. Missing rows map to 404,
// everything unrecognized to an opaque 500.
func From(err error) *ApiError {
	var ae *ApiError
	if errors.As(err, &ae) {
		return ae
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound("resource not found")
	}
	return ErrInternal("unexpected error")
}
