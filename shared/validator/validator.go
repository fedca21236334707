package validator

import (
	"errors"
	"fmt"

	"hoteldesk/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate = val.New(val.WithRequiredStructEnabled())

// Struct validates tagged fields and reduces the first violation to a Failure.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors val.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		field := fieldErrors[0]

		return failure.BadRequestFromString(fmt.Sprintf("invalid %s: failed on %q", field.Field(), field.Tag()))
	}

	return failure.BadRequest(err)
}
