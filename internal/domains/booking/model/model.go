package model

import (
	"strings"
	"time"
)

const (
	TableName           = "booking"
	AssignmentTableName = "room_assignment"
	EntityName          = "booking"

	FieldID        = "booking_id"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldStatus    = "status"
	FieldGuestID   = "guest_id"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCheckedIn Status = "Checked-In"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// Statuses lists every valid booking status in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCheckedIn, StatusCompleted, StatusCancelled}
}

// ParseStatus matches raw input against the status set case-insensitively and
// returns the canonical casing.
func ParseStatus(raw string) (Status, bool) {
	for _, status := range Statuses() {
		if strings.EqualFold(string(status), raw) {
			return status, true
		}
	}

	return "", false
}

type Booking struct {
	BookingID int       `db:"booking_id"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	Status    Status    `db:"status"`
	GuestID   int       `db:"guest_id"`
}

// RoomAssignment binds one room to one calendar date within a booking's range.
// The store enforces UNIQUE(room_id, stay_date).
type RoomAssignment struct {
	StayDate  time.Time `db:"stay_date"`
	BookingID int       `db:"booking_id"`
	RoomID    int       `db:"room_id"`
}
