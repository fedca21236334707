package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hoteldesk/infras/otel"
	"hoteldesk/infras/postgres"
	"hoteldesk/internal/domains/room/model"
	"hoteldesk/shared/constant"
	"hoteldesk/shared/logger"
)

type Room interface {
	List(ctx context.Context) ([]model.Room, error)
	Exist(ctx context.Context, id int) (bool, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) List(ctx context.Context) ([]model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.List")
	defer scope.End()

	query := `select room_id, room_type, price, capacity from room order by room_id`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rooms []model.Room
	if err := repo.db.DB.SelectContext(ctx, &rooms, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return rooms, nil
}

func (repo *repositoryImpl) Exist(ctx context.Context, id int) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Exist")
	defer scope.End()

	query := `select exists(select 1 from room where room_id = $1)`

	exist := false
	if err := repo.db.DB.GetContext(ctx, &exist, query, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", model.EntityName, err)
	}

	return exist, nil
}
