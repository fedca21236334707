package model

import (
	"database/sql"
	"time"
)

const (
	ViewName   = "vw_booking_summary"
	EntityName = "booking summary"
)

// Row is one line of the reporting view: one per booking, or one per
// (booking, stay date, room) when assignments exist. Assignment columns are
// null for bookings without rooms.
type Row struct {
	BookingID int            `db:"booking_id"`
	GuestID   int            `db:"guest_id"`
	GuestName string         `db:"guest_name"`
	StartDate time.Time      `db:"start_date"`
	EndDate   time.Time      `db:"end_date"`
	Status    string         `db:"status"`
	StayDate  sql.NullTime   `db:"stay_date"`
	RoomID    sql.NullInt64  `db:"room_id"`
	RoomType  sql.NullString `db:"room_type"`
	Price     sql.NullString `db:"price"`
}
