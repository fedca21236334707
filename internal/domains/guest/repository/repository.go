package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hoteldesk/infras/otel"
	"hoteldesk/infras/postgres"
	"hoteldesk/internal/domains/guest/model"
	"hoteldesk/shared/constant"
	"hoteldesk/shared/logger"
)

type Guest interface {
	List(ctx context.Context) ([]model.Guest, error)
	Insert(ctx context.Context, guest model.Guest) (int, error)
	Exist(ctx context.Context, id int) (bool, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) List(ctx context.Context) ([]model.Guest, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.List")
	defer scope.End()

	query := `select guest_id, name, email, phone from guest order by guest_id`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var guests []model.Guest
	if err := repo.db.DB.SelectContext(ctx, &guests, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list guests: %w", err)
	}

	return guests, nil
}

func (repo *repositoryImpl) Insert(ctx context.Context, guest model.Guest) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.Insert")
	defer scope.End()

	query := `insert into guest (name, email, phone) values ($1, $2, $3) returning guest_id`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var id int
	if err := repo.db.DB.GetContext(ctx, &id, query, guest.Name, guest.Email, guest.Phone); err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to insert guest: %w", err)
	}

	return id, nil
}

func (repo *repositoryImpl) Exist(ctx context.Context, id int) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.Exist")
	defer scope.End()

	query := `select exists(select 1 from guest where guest_id = $1)`

	exist := false
	if err := repo.db.DB.GetContext(ctx, &exist, query, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", model.EntityName, err)
	}

	return exist, nil
}

func (repo *repositoryImpl) Delete(ctx context.Context, id int) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.Delete")
	defer scope.End()

	query := `delete from guest where guest_id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.DB.ExecContext(ctx, query, id)
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to delete guest: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rows, nil
}
