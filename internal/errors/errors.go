// Package errors provides the structured error responses of the lookup API.
package errors

import (
	"fmt"
	"net/http"
)

// Code represents an API error code.
type Code string

const (
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidParam Code = "INVALID_PARAM"
	CodeUnavailable  Code = "UNAVAILABLE"
	CodeRateLimited  Code = "RATE_LIMITED"
)

// APIError represents a structured API error.
type APIError struct {
	Code       Code   `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrUnavailable = &APIError{Code: CodeUnavailable, Message: "Dataset not loaded", HTTPStatus: http.StatusServiceUnavailable}
	ErrRateLimited = &APIError{Code: CodeRateLimited, Message: "Rate limit exceeded", HTTPStatus: http.StatusTooManyRequests}
)

// NotFound creates a not found error naming the missing resource.
func NotFound(resource string) *APIError {
	return &APIError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// InvalidParam creates a bad request error for one query or path parameter.
func InvalidParam(name, reason string) *APIError {
	return &APIError{
		Code:       CodeInvalidParam,
		Message:    fmt.Sprintf("Invalid %s: %s", name, reason),
		HTTPStatus: http.StatusBadRequest,
	}
}
