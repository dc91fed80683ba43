package failure

import (
	"errors"
	"net/http"
)

// Failure carries an HTTP status code and a message safe to show the visitor.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	InvalidDate      = &Failure{Code: http.StatusBadRequest, Message: "Invalid date."}
	InvalidTimeRange = &Failure{Code: http.StatusBadRequest, Message: "Invalid time range."}
	EndBeforeStart   = &Failure{Code: http.StatusBadRequest, Message: "End time must be after start time."}
	LoginRequired    = Unauthorized("Please log in to continue.")
	InvalidLogin     = Unauthorized("Invalid username or password.")
)

func (e *Failure) Error() string {
	return e.Message
}

func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// GetCode returns the HTTP status of err, 500 for anything that is not a Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetMessage returns the visitor-facing message of err. Internal errors are masked.
func GetMessage(err error) string {
	var fail *Failure
	if errors.As(err, &fail) && fail.Code < http.StatusInternalServerError {
		return fail.Message
	}

	return http.StatusText(http.StatusInternalServerError)
}

func IsNotFound(err error) bool {
	return GetCode(err) == http.StatusNotFound
}
