package service

import (
	"context"
	"fmt"

	"hoteldesk/infras/otel"
	"hoteldesk/internal/domains/summary/model"
	"hoteldesk/internal/domains/summary/repository"
	"hoteldesk/shared/constant"

	"github.com/rs/zerolog/log"
)

type Summary interface {
	List(ctx context.Context) ([]model.Row, error)
}

type serviceImpl struct {
	repo repository.Summary
	otel otel.Otel
}

func New(repo repository.Summary, otel otel.Otel) Summary {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) ([]model.Row, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".summary.List")
	defer scope.End()

	rows, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read booking summary")
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to read booking summary: %w", err)
	}

	return rows, nil
}
