package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is an error that carries the HTTP status it should be answered with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	InvalidPageParam  = New(http.StatusBadRequest, "page must be a positive integer")
	InvalidLimitParam = New(http.StatusBadRequest, "limit must be a positive integer")
)

func (e *Failure) Error() string {
	return e.Message
}

func New(code int, message string) *Failure {
	return &Failure{Code: code, Message: message}
}

// from keeps nil errors nil so call sites can wrap unconditionally.
func from(code int, err error) error {
	if err == nil {
		return nil
	}

	return New(code, err.Error())
}

func BadRequest(err error) error {
	return from(http.StatusBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func InternalError(err error) error {
	return from(http.StatusInternalServerError, err)
}

func NotFound(message string) error {
	return New(http.StatusNotFound, message)
}

func NotFoundf(format string, args ...any) error {
	return NotFound(fmt.Sprintf(format, args...))
}

// Conflict reports a request that is valid but clashes with the current state,
// such as responding to an approval that is no longer pending.
func Conflict(message string) error {
	return New(http.StatusConflict, message)
}

// GetCode returns the status carried by err, 500 for anything that is not a Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsPermanent reports whether retrying the operation that produced err cannot succeed.
// Client-side failures (4xx) are permanent; everything else is treated as transient.
func IsPermanent(err error) bool {
	code := GetCode(err)

	return err != nil && code >= http.StatusBadRequest && code < http.StatusInternalServerError
}
