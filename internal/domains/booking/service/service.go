package service

import (
	"context"
	"database/sql"
	"fmt"

	"hoteldesk/infras/otel"
	"hoteldesk/infras/postgres"
	"hoteldesk/internal/domains/booking/model"
	"hoteldesk/internal/domains/booking/model/dto"
	"hoteldesk/internal/domains/booking/repository"
	guestRepo "hoteldesk/internal/domains/guest/repository"
	roomRepo "hoteldesk/internal/domains/room/repository"
	"hoteldesk/shared/constant"
	"hoteldesk/shared/failure"
	"hoteldesk/shared/validator"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	List(ctx context.Context) ([]model.Booking, error)
	Exist(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (int, error)
	CreateViaProcedure(ctx context.Context, req dto.ProcedureBookingRequest) error
	UpdateStatus(ctx context.Context, id int, status model.Status) (int64, error)
}

type serviceImpl struct {
	repo      repository.Booking
	guestRepo guestRepo.Guest
	roomRepo  roomRepo.Room
	otel      otel.Otel
}

func New(repo repository.Booking, guestRepo guestRepo.Guest, roomRepo roomRepo.Room, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		guestRepo: guestRepo,
		roomRepo:  roomRepo,
		otel:      otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) ([]model.Booking, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.List")
	defer scope.End()

	bookings, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}

func (s *serviceImpl) Exist(ctx context.Context, id int) (bool, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Exist")
	defer scope.End()

	exist, err := s.repo.Exist(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check if booking exists: %w", err)
	}

	return exist, nil
}

// Create coordinates the transactional booking flow. All four preconditions
// run on the plain connection before any write; the two dependent inserts then
// commit or roll back as one unit. New bookings always start out Confirmed.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (bookingID int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guestExists, err := s.guestRepo.Exist(ctx, req.GuestID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return 0, fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !guestExists {
		return 0, failure.GuestNotFound // nolint:wrapcheck
	}

	if !req.StartDate.Before(req.EndDate) {
		return 0, failure.InvalidDateRange // nolint:wrapcheck
	}

	roomExists, err := s.roomRepo.Exist(ctx, req.RoomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return 0, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return 0, failure.RoomNotFound // nolint:wrapcheck
	}

	// Stay date containment is inclusive on both ends.
	if req.StayDate.Before(req.StartDate) || req.StayDate.After(req.EndDate) {
		return 0, failure.StayDateOutOfRange // nolint:wrapcheck
	}

	booking := model.Booking{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    model.StatusConfirmed,
		GuestID:   req.GuestID,
	}

	bookingID, err = s.repo.CreateWithAssignment(ctx, booking, req.StayDate, req.RoomID)
	if err != nil {
		log.Error().Err(err).Int("guest_id", req.GuestID).Int("room_id", req.RoomID).Msg("booking transaction rolled back")

		switch {
		case postgres.ConstraintName(err) == postgres.ConstraintRoomStay:
			return 0, failure.RoomAlreadyAssigned // nolint:wrapcheck
		case postgres.IsConstraintViolation(err):
			return 0, failure.Conflict("constraint violation: " + err.Error()) // nolint:wrapcheck
		}

		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	return bookingID, nil
}

// CreateViaProcedure delegates validation and room assignment to the stored
// routine; the server picks the room. Messages it raises are surfaced verbatim.
func (s *serviceImpl) CreateViaProcedure(ctx context.Context, req dto.ProcedureBookingRequest) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CreateViaProcedure")
	defer scope.End()

	if err := validator.Struct(req); err != nil {
		return err // nolint:wrapcheck
	}

	guestExists, err := s.guestRepo.Exist(ctx, req.GuestID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")
		scope.TraceError(err)

		return fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !guestExists {
		return failure.GuestNotFound // nolint:wrapcheck
	}

	roomType := sql.NullString{String: req.RoomType, Valid: req.RoomType != ""}

	if err := s.repo.CreateViaProcedure(ctx, req.GuestID, req.StartDate, req.EndDate, roomType); err != nil {
		log.Error().Err(err).Msg("stored procedure booking failed")
		scope.TraceError(err)

		if msg, ok := postgres.RaisedMessage(err); ok {
			return failure.BadRequestFromString(msg) // nolint:wrapcheck
		}

		return fmt.Errorf("failed to create booking via procedure: %w", err)
	}

	return nil
}

// UpdateStatus mutates one booking's status after an existence check.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id int, status model.Status) (int64, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateStatus")
	defer scope.End()

	exist, err := s.repo.Exist(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return 0, failure.BookingNotFound // nolint:wrapcheck
	}

	rows, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		log.Error().Err(err).Int("booking_id", id).Msg("failed to update booking status")
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to update booking status: %w", err)
	}

	return rows, nil
}
