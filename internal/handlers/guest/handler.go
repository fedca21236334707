package guest

import (
	"context"
	"errors"

	"hoteldesk/infras/otel"
	"hoteldesk/internal/domains/guest/model/dto"
	"hoteldesk/internal/domains/guest/service"
	"hoteldesk/shared/constant"
	"hoteldesk/shared/failure"
	"hoteldesk/transport/cli/prompt"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// List prints every guest, one line per row. Service failures reduce to a
// printed message; the returned error is reserved for an exhausted input
// source.
func (handler *Handler) List(ctx context.Context, p *prompt.Prompter) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".guest.List")
	defer scope.End()

	guests, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		p.Println("Error fetching guests.")

		return nil
	}

	for _, guest := range guests {
		p.Printf("%d | %s | %s | %s\n", guest.GuestID, guest.Name, guest.Email, guest.PhoneOrDash())
	}

	return nil
}

func (handler *Handler) Add(ctx context.Context, p *prompt.Prompter) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".guest.Add")
	defer scope.End()

	p.Println("\n=== ADD NEW GUEST ===")

	name, err := p.ReadNonEmpty("Name: ")
	if err != nil {
		return err
	}

	email, err := p.ReadEmail("Email: ")
	if err != nil {
		return err
	}

	phone, err := p.ReadOptional("Phone (optional, press Enter to skip): ")
	if err != nil {
		return err
	}

	id, err := handler.service.Add(ctx, dto.AddGuestRequest{Name: name, Email: email, Phone: phone})
	if err != nil {
		scope.TraceError(err)

		if errors.Is(err, failure.DuplicateEmail) {
			p.Println("Error: That email is already registered for another guest. Please use a different email.")

			return nil
		}

		p.Println("Database error while adding guest.")
		p.Println("Details: " + err.Error())

		return nil
	}

	p.Printf("Guest added successfully (ID %d).\n", id)

	return nil
}

func (handler *Handler) Delete(ctx context.Context, p *prompt.Prompter) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".guest.Delete")
	defer scope.End()

	p.Println("\n=== DELETE GUEST ===")

	id, err := p.ReadInt("Guest ID: ")
	if err != nil {
		return err
	}

	rows, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)

		switch {
		case errors.Is(err, failure.GuestNotFound):
			p.Printf("No guest found with ID %d.\n", id)
		case errors.Is(err, failure.GuestInUse):
			p.Println("Error: Could not delete guest, likely has dependent bookings.")
		default:
			p.Println("Error: Could not delete guest.")
			p.Println("Details: " + err.Error())
		}

		return nil
	}

	if rows > 0 {
		p.Printf("Guest (ID %d) deleted successfully.\n", id)
	} else {
		p.Println("Guest not deleted (no rows affected).")
	}

	return nil
}
