package postgres

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// Constraint names declared by the hotel schema.
const (
	ConstraintRoomStay   = "uq_room_stay"
	ConstraintGuestEmail = "uq_guest_email"
)

const (
	classIntegrityViolation = "23"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

// IsConstraintViolation reports whether err is a store rejection from the
// integrity-constraint class (unique, foreign key, check).
func IsConstraintViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code.Class()) == classIntegrityViolation
}

// IsForeignKeyViolation reports whether err is a referential-integrity rejection.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == codeForeignKeyViolation
}

// RaisedMessage returns the bare server-side message when err originated in
// the database, so messages raised by stored routines can be surfaced to the
// operator verbatim.
func RaisedMessage(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Message, true
	}

	return "", false
}

// ConstraintName returns the name of the constraint a rejected write violated,
// or "" when err is not a constraint violation. The driver reports the name in
// a structured field; matching on the message text happens only here, as a
// fallback for servers that omit it.
func ConstraintName(err error) string {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code.Class()) != classIntegrityViolation {
		return ""
	}

	if pqErr.Constraint != "" {
		return pqErr.Constraint
	}

	for _, known := range []string{ConstraintRoomStay, ConstraintGuestEmail} {
		if strings.Contains(pqErr.Message, known) {
			return known
		}
	}

	return ""
}
