package model

import "database/sql"

const (
	TableName  = "guest"
	EntityName = "guest"

	FieldID    = "guest_id"
	FieldName  = "name"
	FieldEmail = "email"
	FieldPhone = "phone"
)

type Guest struct {
	GuestID int            `db:"guest_id"`
	Name    string         `db:"name"`
	Email   string         `db:"email"`
	Phone   sql.NullString `db:"phone"`
}

// PhoneOrDash renders the optional phone for listing output.
func (g Guest) PhoneOrDash() string {
	if g.Phone.Valid {
		return g.Phone.String
	}

	return "-"
}
