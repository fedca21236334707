package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Named conditions of the booking desk. Handlers match on these with errors.Is,
// so each must stay a unique pointer.
var (
	GuestNotFound       = &Failure{Code: http.StatusNotFound, Message: "no guest found with that ID"}
	RoomNotFound        = &Failure{Code: http.StatusNotFound, Message: "no room found with that ID"}
	BookingNotFound     = &Failure{Code: http.StatusNotFound, Message: "no booking found with that ID"}
	InvalidDateRange    = &Failure{Code: http.StatusBadRequest, Message: "start date must be before end date"}
	StayDateOutOfRange  = &Failure{Code: http.StatusBadRequest, Message: "stay date must be within the booking period"}
	RoomAlreadyAssigned = &Failure{Code: http.StatusConflict, Message: "that room is already assigned on the requested stay date"}
	DuplicateEmail      = &Failure{Code: http.StatusConflict, Message: "that email is already registered for another guest"}
	GuestInUse          = &Failure{Code: http.StatusConflict, Message: "guest cannot be deleted, likely has dependent bookings"}
)

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
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

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
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
