package service

import (
	"context"
	"fmt"

	"hoteldesk/infras/otel"
	"hoteldesk/infras/postgres"
	"hoteldesk/internal/domains/guest/model"
	"hoteldesk/internal/domains/guest/model/dto"
	"hoteldesk/internal/domains/guest/repository"
	"hoteldesk/shared/constant"
	"hoteldesk/shared/failure"

	"github.com/rs/zerolog/log"
)

type Guest interface {
	List(ctx context.Context) ([]model.Guest, error)
	Add(ctx context.Context, req dto.AddGuestRequest) (int, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type serviceImpl struct {
	repo repository.Guest
	otel otel.Otel
}

func New(repo repository.Guest, otel otel.Otel) Guest {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) ([]model.Guest, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.List")
	defer scope.End()

	guests, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list guests")
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list guests: %w", err)
	}

	return guests, nil
}

// Add inserts a new guest. The store owns email uniqueness; a rejection on the
// email constraint comes back as failure.DuplicateEmail.
func (s *serviceImpl) Add(ctx context.Context, req dto.AddGuestRequest) (int, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Add")
	defer scope.End()

	id, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("failed to add guest")
		scope.TraceError(err)

		if postgres.ConstraintName(err) == postgres.ConstraintGuestEmail {
			return 0, failure.DuplicateEmail // nolint:wrapcheck
		}

		if postgres.IsConstraintViolation(err) {
			return 0, failure.Conflict("constraint violation: " + err.Error()) // nolint:wrapcheck
		}

		return 0, fmt.Errorf("failed to add guest: %w", err)
	}

	return id, nil
}

// Delete removes a guest after an existence check. The store rejects deletion
// of guests with dependent bookings through referential integrity.
func (s *serviceImpl) Delete(ctx context.Context, id int) (int64, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Delete")
	defer scope.End()

	exist, err := s.repo.Exist(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !exist {
		return 0, failure.GuestNotFound // nolint:wrapcheck
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("guest_id", id).Msg("failed to delete guest")
		scope.TraceError(err)

		if postgres.IsForeignKeyViolation(err) {
			return 0, failure.GuestInUse // nolint:wrapcheck
		}

		return 0, fmt.Errorf("failed to delete guest: %w", err)
	}

	return rows, nil
}
