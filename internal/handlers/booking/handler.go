package booking

import (
	"context"
	"errors"
	"net/http"
	"time"

	"hoteldesk/infras/otel"
	"hoteldesk/internal/domains/booking/model/dto"
	"hoteldesk/internal/domains/booking/service"
	"hoteldesk/shared/constant"
	"hoteldesk/shared/failure"
	"hoteldesk/transport/cli/prompt"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) List(ctx context.Context, p *prompt.Prompter) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".booking.List")
	defer scope.End()

	bookings, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		p.Println("Error reading bookings: " + err.Error())

		return nil
	}

	p.Println("\n=== BOOKINGS ===")

	for _, booking := range bookings {
		p.Printf("BookingID: %d | GuestID: %d | %s to %s | Status: %s\n",
			booking.BookingID,
			booking.GuestID,
			booking.StartDate.Format(time.DateOnly),
			booking.EndDate.Format(time.DateOnly),
			booking.Status,
		)
	}

	return nil
}

func (handler *Handler) UpdateStatus(ctx context.Context, p *prompt.Prompter) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".booking.UpdateStatus")
	defer scope.End()

	p.Println("\n=== UPDATE BOOKING STATUS ===")

	id, err := p.ReadInt("Booking ID: ")
	if err != nil {
		return err
	}

	exists, err := handler.service.Exist(ctx, id)
	if err != nil {
		scope.TraceError(err)
		p.Println("Database error while updating booking status.")
		p.Println("Details: " + err.Error())

		return nil
	}

	if !exists {
		p.Printf("No booking found with ID %d.\n", id)

		return nil
	}

	status, err := p.ReadStatus("New Status (Pending/Confirmed/Checked-In/Completed/Cancelled): ")
	if err != nil {
		return err
	}

	rows, err := handler.service.UpdateStatus(ctx, id, status)
	if err != nil {
		scope.TraceError(err)

		if errors.Is(err, failure.BookingNotFound) {
			p.Printf("No booking found with ID %d.\n", id)

			return nil
		}

		p.Println("Database error while updating booking status.")
		p.Println("Details: " + err.Error())

		return nil
	}

	if rows > 0 {
		p.Printf("Booking status updated to '%s'.\n", status)
	} else {
		p.Println("Booking not found (no rows updated).")
	}

	return nil
}

// CreateTransactional drives the all-or-nothing booking flow: five validated
// inputs, then one coordinator call that either commits both rows or none.
func (handler *Handler) CreateTransactional(ctx context.Context, p *prompt.Prompter) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".booking.CreateTransactional")
	defer scope.End()

	p.Println("\n=== TRANSACTION: NEW BOOKING + ROOM ASSIGNMENT ===")

	guestID, err := p.ReadInt("Guest ID: ")
	if err != nil {
		return err
	}

	startDate, err := p.ReadDate("Start Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	endDate, err := p.ReadDate("End Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	roomID, err := p.ReadInt("Room ID: ")
	if err != nil {
		return err
	}

	stayDate, err := p.ReadDate("StayDate (YYYY-MM-DD, must be within booking period): ")
	if err != nil {
		return err
	}

	req := dto.CreateBookingRequest{
		GuestID:   guestID,
		StartDate: startDate,
		EndDate:   endDate,
		RoomID:    roomID,
		StayDate:  stayDate,
	}

	bookingID, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		handler.printCreateFailure(p, req, err)

		return nil
	}

	p.Printf("Transaction successful! BookingID = %d\n", bookingID)

	return nil
}

func (handler *Handler) printCreateFailure(p *prompt.Prompter, req dto.CreateBookingRequest, err error) {
	switch {
	case errors.Is(err, failure.GuestNotFound):
		p.Printf("No guest found with ID %d. Transaction aborted.\n", req.GuestID)
	case errors.Is(err, failure.InvalidDateRange):
		p.Println("Error: StartDate must be before EndDate. Transaction aborted.")
	case errors.Is(err, failure.RoomNotFound):
		p.Printf("No room found with ID %d. Transaction aborted.\n", req.RoomID)
	case errors.Is(err, failure.StayDateOutOfRange):
		p.Println("Error: StayDate must be within the booking period. Transaction aborted.")
	case errors.Is(err, failure.RoomAlreadyAssigned):
		p.Printf("Error: That room is already assigned on %s. Please choose a different room or date.\n",
			req.StayDate.Format(time.DateOnly))
	case failure.GetCode(err) == http.StatusConflict:
		p.Println("Transaction failed due to a constraint violation.")
		p.Println("Details: " + err.Error())
	default:
		p.Println("Database error during transaction. Rolling back...")
		p.Println("Details: " + err.Error())
	}
}

func (handler *Handler) CreateViaProcedure(ctx context.Context, p *prompt.Prompter) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".booking.CreateViaProcedure")
	defer scope.End()

	p.Println("\n=== CREATE BOOKING VIA STORED PROCEDURE ===")

	guestID, err := p.ReadInt("Guest ID: ")
	if err != nil {
		return err
	}

	startDate, err := p.ReadDate("Start Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	endDate, err := p.ReadDate("End Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	roomType, err := p.ReadOptional("Room type (Single/Double/Suite/Deluxe/Family) or press Enter for any: ")
	if err != nil {
		return err
	}

	req := dto.ProcedureBookingRequest{
		GuestID:   guestID,
		StartDate: startDate,
		EndDate:   endDate,
		RoomType:  roomType,
	}

	if err := handler.service.CreateViaProcedure(ctx, req); err != nil {
		scope.TraceError(err)

		if errors.Is(err, failure.GuestNotFound) {
			p.Printf("No guest found with ID %d.\n", guestID)

			return nil
		}

		p.Println("Error while calling stored procedure.")
		p.Println("Details: " + err.Error())

		return nil
	}

	p.Println("Stored procedure executed successfully (booking created and assigned).")

	return nil
}
