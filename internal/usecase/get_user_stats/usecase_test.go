package get_user_stats

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/internal/integrations/userservice"
)

type mockRepository struct {
	reservations []*domain.Reservation
	err          error

	gotFilter domain.ReservationsFilter
}

func (m *mockRepository) List(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	m.gotFilter = filter
	return m.reservations, m.err
}

type mockUserClient struct {
	user *userservice.User
	err  error
}

func (m *mockUserClient) GetUserWithGracefulDegradation(_ context.Context, _ int64) (*userservice.User, error) {
	return m.user, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func TestUseCase_Execute_AccessDenied(t *testing.T) {
	uc := NewUseCase(&mockRepository{}, &mockUserClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, RequestingUserID: 2})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUseCase_Execute_InvalidUserID(t *testing.T) {
	uc := NewUseCase(&mockRepository{}, &mockUserClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 0, RequestingUserID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_FiltersByUser(t *testing.T) {
	repo := &mockRepository{
		reservations: []*domain.Reservation{
			reservation(1,
				time.Date(2026, 8, 3, 10, 0, 0, 0, time.UTC),
				time.Date(2026, 8, 3, 12, 0, 0, 0, time.UTC)),
		},
	}
	client := &mockUserClient{user: &userservice.User{ID: 1, Name: "Alice"}}

	uc := NewUseCase(repo, client, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, RequestingUserID: 1})
	require.NoError(t, err)

	require.NotNil(t, repo.gotFilter.UserID)
	assert.Equal(t, int64(1), *repo.gotFilter.UserID)
	assert.Equal(t, "Alice", resp.UserName)
	assert.Equal(t, 1, resp.TotalReservations)
}

func TestUseCase_Execute_UserServiceDegraded(t *testing.T) {
	repo := &mockRepository{
		reservations: []*domain.Reservation{
			reservation(1,
				time.Date(2026, 8, 3, 10, 0, 0, 0, time.UTC),
				time.Date(2026, 8, 3, 12, 0, 0, 0, time.UTC)),
		},
	}
	client := &mockUserClient{err: fmt.Errorf("%w: timeout", userservice.ErrServiceDegraded)}

	uc := NewUseCase(repo, client, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, RequestingUserID: 1})
	require.NoError(t, err)

	// Статистика отдается без имени
	assert.Empty(t, resp.UserName)
	assert.Equal(t, 1, resp.TotalReservations)
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	repo := &mockRepository{err: errors.New("connection refused")}
	uc := NewUseCase(repo, &mockUserClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, RequestingUserID: 1})
	assert.ErrorIs(t, err, ErrInternal)
}
