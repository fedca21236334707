package dto

import (
	"database/sql"

	"hoteldesk/internal/domains/guest/model"
)

type AddGuestRequest struct {
	Name  string
	Email string
	// Phone is optional, an empty string means no value and is stored as NULL.
	Phone string
}

func (r AddGuestRequest) ToModel() model.Guest {
	guest := model.Guest{
		Name:  r.Name,
		Email: r.Email,
	}

	if r.Phone != "" {
		guest.Phone = sql.NullString{String: r.Phone, Valid: true}
	}

	return guest
}
