package get_user_stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// 2026-08-03 - понедельник
var testNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func reservation(id int64, start, end time.Time) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		UserID:    1,
		StartTime: start,
		EndTime:   end,
	}
}

func TestComputeStats_Empty(t *testing.T) {
	resp := computeStats(nil, testNow)

	assert.Zero(t, resp.TotalReservations)
	assert.Zero(t, resp.TotalHours)
	assert.Zero(t, resp.AvgDuration)
	assert.Equal(t, "-", resp.PreferredDay)
	assert.Equal(t, "-", resp.PreferredHour)
	assert.Empty(t, resp.RecentReservations)
	assert.Len(t, resp.Charts.Monthly, 12)
	assert.Len(t, resp.Charts.DayOfWeek, 7)
	assert.Len(t, resp.Charts.HourOfDay, 24)
}

func TestComputeStats_Totals(t *testing.T) {
	reservations := []*domain.Reservation{
		// Прошедшее, 1.5 часа
		reservation(1,
			time.Date(2026, 8, 3, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 3, 11, 30, 0, 0, time.UTC)),
		// Будущее, 2 часа
		reservation(2,
			time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 20, 16, 0, 0, 0, time.UTC)),
	}

	resp := computeStats(reservations, testNow)

	assert.Equal(t, 2, resp.TotalReservations)
	assert.Equal(t, 1, resp.UpcomingReservations)
	assert.Equal(t, 1, resp.PastReservations)
	assert.InDelta(t, 3.5, resp.TotalHours, 1e-9)
	assert.InDelta(t, 1.8, resp.AvgDuration, 1e-9) // 3.5/2 = 1.75 -> 1.8
}

func TestComputeStats_PreferredDayAndHour(t *testing.T) {
	reservations := []*domain.Reservation{
		// Два понедельника
		reservation(1,
			time.Date(2026, 8, 3, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 3, 11, 0, 0, 0, time.UTC)),
		reservation(2,
			time.Date(2026, 8, 10, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 10, 11, 0, 0, 0, time.UTC)),
		// Один вторник
		reservation(3,
			time.Date(2026, 8, 4, 15, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 4, 16, 0, 0, 0, time.UTC)),
	}

	resp := computeStats(reservations, testNow)

	assert.Equal(t, "Monday", resp.PreferredDay)
	// Час 10 занят дважды (конечный час тоже включается: 10 и 11)
	assert.Equal(t, "10h", resp.PreferredHour)
	assert.Equal(t, []int{2, 1, 0, 0, 0, 0, 0}, resp.Charts.DayOfWeek)
}

func TestComputeStats_MonthlyOnlyCurrentYear(t *testing.T) {
	reservations := []*domain.Reservation{
		// Текущий год
		reservation(1,
			time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)),
		// Прошлый год: в месячное распределение не попадает,
		// но в тоталах учитывается
		reservation(2,
			time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 3, 11, 0, 0, 0, time.UTC)),
	}

	resp := computeStats(reservations, testNow)

	assert.Equal(t, 1, resp.Charts.Monthly[2])
	assert.Equal(t, 2, resp.TotalReservations)
	assert.InDelta(t, 2.0, resp.TotalHours, 1e-9)
}

func TestRecentReservations_LimitAndOrder(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	var reservations []*domain.Reservation
	for i := 0; i < 7; i++ {
		start := base.AddDate(0, 0, i)
		reservations = append(reservations, reservation(int64(i+1), start, start.Add(time.Hour)))
	}

	resp := computeStats(reservations, testNow)

	require.Len(t, resp.RecentReservations, 5)

	// Последние по start_time, по убыванию
	assert.Equal(t, int64(7), resp.RecentReservations[0].ID)
	assert.Equal(t, int64(3), resp.RecentReservations[4].ID)
	for i := 1; i < len(resp.RecentReservations); i++ {
		assert.True(t, resp.RecentReservations[i].StartTime.Before(resp.RecentReservations[i-1].StartTime))
	}

	// Исходный срез не переупорядочен
	assert.Equal(t, int64(1), reservations[0].ID)
}

func TestRoundTenth(t *testing.T) {
	assert.InDelta(t, 1.8, roundTenth(1.75), 1e-9)
	assert.InDelta(t, 1.7, roundTenth(1.74), 1e-9)
	assert.InDelta(t, 0.0, roundTenth(0.04), 1e-9)
	assert.InDelta(t, 2.0, roundTenth(1.96), 1e-9)
}
