package service_test

import (
	"context"
	"errors"
	"testing"

	"hoteldesk/infras/otel"
	"hoteldesk/internal/domains/guest/mocks"
	"hoteldesk/internal/domains/guest/model"
	"hoteldesk/internal/domains/guest/model/dto"
	"hoteldesk/internal/domains/guest/service"
	"hoteldesk/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Guest, *mocks.MockGuest) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGuest(ctrl)

	return service.New(repo, otel.NewNoop()), repo
}

func TestAdd(t *testing.T) {
	t.Run("inserts guest and returns generated id", func(t *testing.T) {
		svc, repo := newService(t)

		req := dto.AddGuestRequest{Name: "Ada Lovelace", Email: "ada@example.com", Phone: "555-0100"}
		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, guest model.Guest) (int, error) {
				assert.Equal(t, "Ada Lovelace", guest.Name)
				assert.True(t, guest.Phone.Valid)
				assert.Equal(t, "555-0100", guest.Phone.String)
				return 7, nil
			})

		id, err := svc.Add(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 7, id)
	})

	t.Run("empty phone is stored as null", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, guest model.Guest) (int, error) {
				assert.False(t, guest.Phone.Valid)
				return 8, nil
			})

		_, err := svc.Add(context.Background(), dto.AddGuestRequest{Name: "Bob", Email: "bob@example.org"})

		require.NoError(t, err)
	})

	t.Run("duplicate email maps to DuplicateEmail", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(0, &pq.Error{
			Code:       "23505",
			Constraint: "uq_guest_email",
		})

		_, err := svc.Add(context.Background(), dto.AddGuestRequest{Name: "Bob", Email: "taken@example.org"})

		assert.ErrorIs(t, err, failure.DuplicateEmail)
	})

	t.Run("other constraint violations carry the store message", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(0, &pq.Error{
			Code:    "23514",
			Message: "check constraint violated",
		})

		_, err := svc.Add(context.Background(), dto.AddGuestRequest{Name: "Bob", Email: "b@example.org"})

		require.Error(t, err)
		assert.NotErrorIs(t, err, failure.DuplicateEmail)
		assert.Contains(t, err.Error(), "constraint violation")
	})

	t.Run("unclassified database errors are wrapped", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(0, errors.New("connection reset"))

		_, err := svc.Add(context.Background(), dto.AddGuestRequest{Name: "Bob", Email: "b@example.org"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestDelete(t *testing.T) {
	t.Run("missing guest aborts before the delete", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().Exist(gomock.Any(), 99).Return(false, nil)

		_, err := svc.Delete(context.Background(), 99)

		assert.ErrorIs(t, err, failure.GuestNotFound)
	})

	t.Run("foreign key rejection maps to GuestInUse", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().Exist(gomock.Any(), 3).Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), 3).Return(int64(0), &pq.Error{
			Code:       "23503",
			Constraint: "fk_booking_guest",
		})

		_, err := svc.Delete(context.Background(), 3)

		assert.ErrorIs(t, err, failure.GuestInUse)
	})

	t.Run("reports affected rows", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().Exist(gomock.Any(), 3).Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), 3).Return(int64(1), nil)

		rows, err := svc.Delete(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	})
}
