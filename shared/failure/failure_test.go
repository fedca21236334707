package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hoteldesk/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestNamedConditions(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
	}{
		{name: "GuestNotFound", failure: failure.GuestNotFound, code: http.StatusNotFound},
		{name: "RoomNotFound", failure: failure.RoomNotFound, code: http.StatusNotFound},
		{name: "BookingNotFound", failure: failure.BookingNotFound, code: http.StatusNotFound},
		{name: "InvalidDateRange", failure: failure.InvalidDateRange, code: http.StatusBadRequest},
		{name: "StayDateOutOfRange", failure: failure.StayDateOutOfRange, code: http.StatusBadRequest},
		{name: "RoomAlreadyAssigned", failure: failure.RoomAlreadyAssigned, code: http.StatusConflict},
		{name: "DuplicateEmail", failure: failure.DuplicateEmail, code: http.StatusConflict},
		{name: "GuestInUse", failure: failure.GuestInUse, code: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message == "" {
				t.Error("expected a message")
			}
		})
	}
}

func TestNamedConditionsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("creating booking: %w", failure.RoomAlreadyAssigned)

	if !errors.Is(wrapped, failure.RoomAlreadyAssigned) {
		t.Error("expected wrapped error to match RoomAlreadyAssigned")
	}
	if errors.Is(wrapped, failure.GuestNotFound) {
		t.Error("wrapped error must not match an unrelated condition")
	}
	if failure.GetCode(wrapped) != http.StatusConflict {
		t.Errorf("expected code %d, got %d", http.StatusConflict, failure.GetCode(wrapped))
	}
}

func TestGetCode(t *testing.T) {
	if code := failure.GetCode(errors.New("plain")); code != http.StatusInternalServerError {
		t.Errorf("expected %d for plain errors, got %d", http.StatusInternalServerError, code)
	}
	if code := failure.GetCode(failure.BadRequestFromString("bad")); code != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, code)
	}
}
