package repository

import (
	"context"
	"fmt"

	"hoteldesk/infras/otel"
	"hoteldesk/infras/postgres"
	"hoteldesk/internal/domains/summary/model"
	"hoteldesk/shared/constant"
	"hoteldesk/shared/logger"
)

type Summary interface {
	List(ctx context.Context) ([]model.Row, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Summary {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) List(ctx context.Context) ([]model.Row, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".summary.List")
	defer scope.End()

	query := `select booking_id, guest_id, guest_name, start_date, end_date, status, stay_date, room_id, room_type, price
		from vw_booking_summary order by booking_id, stay_date`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []model.Row
	if err := repo.db.DB.SelectContext(ctx, &rows, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to read booking summary: %w", err)
	}

	return rows, nil
}
