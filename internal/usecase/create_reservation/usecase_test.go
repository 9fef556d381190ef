package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// --- моки ---

type mockRepository struct {
	existsOverlapping bool
	existsErr         error
	createErr         error

	gotStart time.Time
	gotEnd   time.Time
	created  *domain.Reservation
}

func (m *mockRepository) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}

	r.ID = 42
	r.CreatedAt = time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	m.created = r
	return r, nil
}

func (m *mockRepository) ExistsOverlapping(_ context.Context, start, end time.Time) (bool, error) {
	m.gotStart = start
	m.gotEnd = end
	return m.existsOverlapping, m.existsErr
}

// mockTxManager выполняет функцию без реальной транзакции
type mockTxManager struct {
	calls int
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *mockRepository, tx *mockTxManager, now time.Time) *UseCase {
	uc := NewUseCase(repo, tx, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

// --- тесты ---

func TestUseCase_Execute_Success(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	repo := &mockRepository{}
	tx := &mockTxManager{}
	uc := newTestUseCase(repo, tx, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    7,
		StartTime: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(7), resp.UserID)
	assert.Equal(t, 1, tx.calls)
}

func TestUseCase_Execute_NormalizesToUTC(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	repo := &mockRepository{}
	uc := newTestUseCase(repo, &mockTxManager{}, now)

	loc := time.FixedZone("UTC+3", 3*60*60)
	_, err := uc.Execute(context.Background(), &Request{
		UserID:    7,
		StartTime: time.Date(2026, 9, 1, 13, 0, 0, 0, loc), // 10:00 UTC
		EndTime:   time.Date(2026, 9, 1, 15, 0, 0, 0, loc), // 12:00 UTC
	})

	require.NoError(t, err)
	assert.Equal(t, time.UTC, repo.gotStart.Location())
	assert.Equal(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), repo.gotStart)
	assert.Equal(t, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC), repo.gotEnd)
}

func TestUseCase_Execute_SlotTaken(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	repo := &mockRepository{existsOverlapping: true}
	uc := newTestUseCase(repo, &mockTxManager{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    7,
		StartTime: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, repo.created)
}

func TestUseCase_Execute_InvalidRange(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	repo := &mockRepository{}
	tx := &mockTxManager{}
	uc := newTestUseCase(repo, tx, now)

	start := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	// Конец раньше начала
	_, err := uc.Execute(context.Background(), &Request{
		UserID:    7,
		StartTime: start,
		EndTime:   start.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)

	// Нулевая длительность
	_, err = uc.Execute(context.Background(), &Request{
		UserID:    7,
		StartTime: start,
		EndTime:   start,
	})
	assert.ErrorIs(t, err, ErrInvalidRange)

	// До транзакции дело не дошло
	assert.Equal(t, 0, tx.calls)
}

func TestUseCase_Execute_PastStart(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&mockRepository{}, &mockTxManager{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    7,
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
	})

	assert.ErrorIs(t, err, ErrPastStart)
}

func TestUseCase_Execute_RepositoryErrors(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	req := &Request{
		UserID:    7,
		StartTime: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("overlap check fails", func(t *testing.T) {
		repo := &mockRepository{existsErr: errors.New("connection refused")}
		uc := newTestUseCase(repo, &mockTxManager{}, now)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("insert fails", func(t *testing.T) {
		repo := &mockRepository{createErr: errors.New("connection refused")}
		uc := newTestUseCase(repo, &mockTxManager{}, now)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInternal)
	})
}
