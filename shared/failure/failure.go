package failure

import (
	"errors"
	"net/http"
)

// Failure is an error that carries the HTTP status it should be answered with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	InvalidPageParam  = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
	InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
	ForbiddenError    = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
)

func (e *Failure) Error() string {
	return e.Message
}

// Is matches any failure answered with the same status, so callers can test
// errors.Is(err, failure.ForbiddenError) without caring about the message.
func (e *Failure) Is(target error) bool {
	var other *Failure
	if !errors.As(target, &other) {
		return false
	}

	return e.Code == other.Code
}

// BadRequest wraps a validation error. A nil error stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusBadRequest, Message: err.Error()}
}

func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

func Unauthorized(msg string) error {
	return &Failure{Code: http.StatusUnauthorized, Message: msg}
}

func Forbidden(msg string) error {
	return &Failure{Code: http.StatusForbidden, Message: msg}
}

// NotWritten reports a write the data store accepted but applied to no row.
// Row-level security rejects silently, so a missing record and a denied write
// look the same from here.
func NotWritten(entity string) error {
	return &Failure{Code: http.StatusForbidden, Message: entity + " was not updated: record missing or write not permitted"}
}

func NotFound(msg string) error {
	return &Failure{Code: http.StatusNotFound, Message: msg}
}

func Conflict(msg string) error {
	return &Failure{Code: http.StatusConflict, Message: msg}
}

// GetCode returns the status an error should be answered with; anything that
// is not a Failure is a 500.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
