package service

import (
	"context"
	"fmt"

	"hoteldesk/infras/otel"
	"hoteldesk/internal/domains/room/model"
	"hoteldesk/internal/domains/room/repository"
	"hoteldesk/shared/constant"

	"github.com/rs/zerolog/log"
)

type Room interface {
	List(ctx context.Context) ([]model.Room, error)
}

type serviceImpl struct {
	repo repository.Room
	otel otel.Otel
}

func New(repo repository.Room, otel otel.Otel) Room {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) ([]model.Room, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.List")
	defer scope.End()

	rooms, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooms")
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return rooms, nil
}
