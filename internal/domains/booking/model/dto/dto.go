package dto

import "time"

// CreateBookingRequest carries the validated operator input for the
// transactional booking flow. Dates are civil calendar dates.
type CreateBookingRequest struct {
	GuestID   int
	StartDate time.Time
	EndDate   time.Time
	RoomID    int
	StayDate  time.Time
}

// ProcedureBookingRequest feeds the server-side create_booking_with_validation
// routine. An empty RoomType lets the server pick any available room.
type ProcedureBookingRequest struct {
	GuestID   int
	StartDate time.Time
	EndDate   time.Time
	RoomType  string `validate:"omitempty,oneof=Single Double Suite Deluxe Family"`
}
