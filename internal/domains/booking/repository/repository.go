package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hoteldesk/infras/otel"
	"hoteldesk/infras/postgres"
	"hoteldesk/internal/domains/booking/model"
	"hoteldesk/shared/constant"
	"hoteldesk/shared/logger"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	List(ctx context.Context) ([]model.Booking, error)
	Exist(ctx context.Context, id int) (bool, error)
	UpdateStatus(ctx context.Context, id int, status model.Status) (int64, error)
	CreateWithAssignment(ctx context.Context, booking model.Booking, stayDate time.Time, roomID int) (int, error)
	CreateViaProcedure(ctx context.Context, guestID int, startDate, endDate time.Time, roomType sql.NullString) error
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) List(ctx context.Context) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.List")
	defer scope.End()

	query := `select booking_id, start_date, end_date, status, guest_id from booking order by booking_id`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var bookings []model.Booking
	if err := repo.db.DB.SelectContext(ctx, &bookings, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}

func (repo *repositoryImpl) Exist(ctx context.Context, id int) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Exist")
	defer scope.End()

	query := `select exists(select 1 from booking where booking_id = $1)`

	exist := false
	if err := repo.db.DB.GetContext(ctx, &exist, query, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", model.EntityName, err)
	}

	return exist, nil
}

func (repo *repositoryImpl) UpdateStatus(ctx context.Context, id int, status model.Status) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateStatus")
	defer scope.End()

	query := `update booking set status = $1 where booking_id = $2`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to update booking status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rows, nil
}

// CreateWithAssignment inserts the booking row and its first room assignment
// inside one transaction. Either both rows commit or neither does; the
// deferred rollback releases the transaction on every non-commit exit path.
func (repo *repositoryImpl) CreateWithAssignment(ctx context.Context, booking model.Booking, stayDate time.Time, roomID int) (bookingID int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateWithAssignment")
	defer scope.End()

	tx, err := repo.db.DB.BeginTxx(ctx, nil)
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to begin booking transaction: %w", err)
	}

	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Msg("failed to roll back booking transaction")
		}
	}()

	insertBooking := `insert into booking (start_date, end_date, status, guest_id) values ($1, $2, $3, $4) returning booking_id`
	scope.SetAttribute(constant.OtelQueryAttributeKey, insertBooking)

	if err = tx.GetContext(ctx, &bookingID, insertBooking, booking.StartDate, booking.EndDate, booking.Status, booking.GuestID); err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to insert booking: %w", err)
	}

	insertAssignment := `insert into room_assignment (stay_date, booking_id, room_id) values ($1, $2, $3)`

	if _, err = tx.ExecContext(ctx, insertAssignment, stayDate, bookingID, roomID); err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to insert room assignment: %w", err)
	}

	if err = tx.Commit(); err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	return bookingID, nil
}

// CreateViaProcedure invokes the server-side routine that validates and
// assigns a room in one call. Business-rule failures arrive as raised errors.
func (repo *repositoryImpl) CreateViaProcedure(ctx context.Context, guestID int, startDate, endDate time.Time, roomType sql.NullString) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateViaProcedure")
	defer scope.End()

	query := `select create_booking_with_validation($1, $2, $3, $4)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.DB.ExecContext(ctx, query, guestID, startDate, endDate, roomType); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to call create_booking_with_validation: %w", err)
	}

	return nil
}
