package reservations

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RoomReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RoomReservationService/internal/integrations/userservice"
	"github.com/m04kA/SMC-RoomReservationService/internal/service/reservations/models"
)

type mockRepository struct {
	reservations []*domain.Reservation
	getByID      *domain.Reservation
	getByIDErr   error
	activeAt     *domain.Reservation
	activeAtErr  error
	listErr      error
	deleteErr    error

	deletedID int64
}

func (m *mockRepository) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	return m.getByID, m.getByIDErr
}

func (m *mockRepository) List(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return m.reservations, m.listErr
}

func (m *mockRepository) GetActiveAt(_ context.Context, _ time.Time) (*domain.Reservation, error) {
	return m.activeAt, m.activeAtErr
}

func (m *mockRepository) Delete(_ context.Context, id int64) error {
	m.deletedID = id
	return m.deleteErr
}

type mockUserClient struct {
	users    []userservice.User
	listErr  error
	user     *userservice.User
	getErr   error
	getCalls int
}

func (m *mockUserClient) ListUsersWithGracefulDegradation(_ context.Context) ([]userservice.User, error) {
	return m.users, m.listErr
}

func (m *mockUserClient) GetUserWithGracefulDegradation(_ context.Context, _ int64) (*userservice.User, error) {
	m.getCalls++
	return m.user, m.getErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testReservation(id, userID int64) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		UserID:    userID,
		StartTime: time.Date(2026, 8, 3, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 8, 3, 12, 0, 0, 0, time.UTC),
	}
}

func TestService_List_ResolvesUserNames(t *testing.T) {
	repo := &mockRepository{
		reservations: []*domain.Reservation{
			testReservation(1, 10),
			testReservation(2, 20),
		},
	}
	client := &mockUserClient{
		users: []userservice.User{
			{ID: 10, Name: "Alice"},
			{ID: 20, Name: "Bob"},
		},
	}

	svc := NewService(repo, client, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListReservationsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 2)

	assert.Equal(t, "Alice", resp.Reservations[0].UserName)
	assert.Equal(t, "Bob", resp.Reservations[1].UserName)
}

func TestService_List_UserServiceDegraded(t *testing.T) {
	repo := &mockRepository{
		reservations: []*domain.Reservation{testReservation(1, 10)},
	}
	client := &mockUserClient{
		listErr: fmt.Errorf("%w: timeout", userservice.ErrServiceDegraded),
	}

	svc := NewService(repo, client, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListReservationsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)

	// Список отдается без имен
	assert.Empty(t, resp.Reservations[0].UserName)
}

func TestService_List_RepositoryError(t *testing.T) {
	repo := &mockRepository{listErr: errors.New("connection refused")}
	svc := NewService(repo, &mockUserClient{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListReservationsRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Delete_OwnerOnly(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		repo := &mockRepository{getByID: testReservation(1, 10)}
		svc := NewService(repo, &mockUserClient{}, nopLogger{})

		err := svc.Delete(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), repo.deletedID)
	})

	t.Run("not owner", func(t *testing.T) {
		repo := &mockRepository{getByID: testReservation(1, 10)}
		svc := NewService(repo, &mockUserClient{}, nopLogger{})

		err := svc.Delete(context.Background(), 1, 99)
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Zero(t, repo.deletedID)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockRepository{getByIDErr: reservationRepo.ErrReservationNotFound}
		svc := NewService(repo, &mockUserClient{}, nopLogger{})

		err := svc.Delete(context.Background(), 404, 10)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestService_CurrentStatus(t *testing.T) {
	now := time.Date(2026, 8, 3, 11, 0, 0, 0, time.UTC)

	t.Run("occupied", func(t *testing.T) {
		repo := &mockRepository{activeAt: testReservation(1, 10)}
		client := &mockUserClient{user: &userservice.User{ID: 10, Name: "Alice"}}
		svc := NewService(repo, client, nopLogger{})

		resp, err := svc.CurrentStatus(context.Background(), now)
		require.NoError(t, err)

		assert.Equal(t, models.StatusOccupied, resp.Status)
		require.NotNil(t, resp.Reservation)
		assert.Equal(t, "Alice", resp.Reservation.UserName)
	})

	t.Run("free", func(t *testing.T) {
		repo := &mockRepository{activeAtErr: reservationRepo.ErrReservationNotFound}
		svc := NewService(repo, &mockUserClient{}, nopLogger{})

		resp, err := svc.CurrentStatus(context.Background(), now)
		require.NoError(t, err)

		assert.Equal(t, models.StatusFree, resp.Status)
		assert.Nil(t, resp.Reservation)
	})

	t.Run("occupied without user name on degradation", func(t *testing.T) {
		repo := &mockRepository{activeAt: testReservation(1, 10)}
		client := &mockUserClient{getErr: fmt.Errorf("%w: timeout", userservice.ErrServiceDegraded)}
		svc := NewService(repo, client, nopLogger{})

		resp, err := svc.CurrentStatus(context.Background(), now)
		require.NoError(t, err)

		assert.Equal(t, models.StatusOccupied, resp.Status)
		require.NotNil(t, resp.Reservation)
		assert.Empty(t, resp.Reservation.UserName)
	})
}
