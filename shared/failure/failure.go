package failure

import (
	"errors"
	"net/http"
)

// Failure is an error the transport layer can answer with directly: Code is the HTTP status and
// Message is shown to the client.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	cause error
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the storage error behind a StorageFailure.
func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest returns nil for a nil err so validation results can be passed straight through.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusBadRequest, Message: err.Error(), cause: err}
}

func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

func NotFound(msg string) error {
	return &Failure{Code: http.StatusNotFound, Message: msg}
}

// Conflict reports a write refused because of the current state, such as a billboard already booked.
func Conflict(msg string) error {
	return &Failure{Code: http.StatusConflict, Message: msg}
}

// StorageFailure marks an error from the database or blob store after everything was rolled back.
func StorageFailure(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusInternalServerError, Message: "storage failure: " + err.Error(), cause: err}
}

func IsFailure(err error) bool {
	var fail *Failure

	return errors.As(err, &fail)
}

func HasCode(err error, code int) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Code == code
}

// GetCode is 500 for anything that is not a Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
