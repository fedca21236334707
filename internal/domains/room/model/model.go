package model

const (
	TableName  = "room"
	EntityName = "room"

	FieldID       = "room_id"
	FieldRoomType = "room_type"
	FieldPrice    = "price"
	FieldCapacity = "capacity"
)

// Room types offered by the hotel.
const (
	TypeSingle = "Single"
	TypeDouble = "Double"
	TypeSuite  = "Suite"
	TypeDeluxe = "Deluxe"
	TypeFamily = "Family"
)

// Room is read-only from the desk's perspective, the room inventory is
// maintained elsewhere.
type Room struct {
	RoomID   int    `db:"room_id"`
	RoomType string `db:"room_type"`
	Price    string `db:"price"`
	Capacity int    `db:"capacity"`
}
