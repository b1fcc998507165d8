package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the sentinel or cause carried by the failure.
func (e *Failure) Unwrap() error {
	return e.Err
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			Err:     err,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Upstream converts a failed backend exchange into a Failure. Client errors reported by the
// backend keep their status so the caller sees the field-level detail; everything else becomes
// a bad gateway.
func Upstream(status int, msg string, cause error) error {
	code := http.StatusBadGateway
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		code = status
	}

	return &Failure{
		Code:    code,
		Message: msg,
		Err:     cause,
	}
}

// Gateway wraps a sentinel that describes a backend misbehaviour the caller must know about.
func Gateway(sentinel error, msg string) error {
	return &Failure{
		Code:    http.StatusBadGateway,
		Message: msg,
		Err:     sentinel,
	}
}

// Unavailable reports a dependency the deployment has not set up or cannot reach right now.
func Unavailable(cause error, msg string) error {
	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Message: msg,
		Err:     cause,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsClientError reports whether err carries a 4xx code.
func IsClientError(err error) bool {
	code := GetCode(err)

	return code >= http.StatusBadRequest && code < http.StatusInternalServerError
}

// Wrap prefixes err's message while keeping its code, so the caller still sees the original detail.
func Wrap(err error, prefix string) error {
	if err == nil {
		return nil
	}

	msg := err.Error()

	var fail *Failure
	if errors.As(err, &fail) && fail.Message != "" {
		msg = fail.Message
	}

	return &Failure{
		Code:    GetCode(err),
		Message: prefix + ": " + msg,
		Err:     err,
	}
}
