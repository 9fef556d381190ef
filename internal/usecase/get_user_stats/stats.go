package get_user_stats

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// computeStats считает детальную статистику по бронированиям одного
// пользователя. Чистая функция от набора бронирований и момента now
func computeStats(reservations []*domain.Reservation, now time.Time) *Response {
	resp := &Response{
		Charts: Charts{
			Monthly:   make([]int, domain.MonthsPerYear),
			DayOfWeek: make([]int, domain.DaysPerWeek),
			HourOfDay: make([]int, domain.HoursPerDay),
		},
		PreferredDay:  "-",
		PreferredHour: "-",
	}

	currentYear := now.Year()

	for _, r := range reservations {
		resp.TotalReservations++
		resp.TotalHours += r.DurationHours()

		if r.IsUpcoming(now) {
			resp.UpcomingReservations++
		} else {
			resp.PastReservations++
		}

		// Распределение по месяцам считается только для текущего года
		if r.StartTime.Year() == currentYear {
			resp.Charts.Monthly[int(r.StartTime.Month())-1]++
		}

		// time.Weekday: 0 = Sunday; переводим к неделе с понедельника
		resp.Charts.DayOfWeek[(int(r.StartTime.Weekday())+6)%7]++

		// Каждый целый час от start.Hour() до end.Hour() включительно
		for h := r.StartTime.Hour(); h <= r.EndTime.Hour() && h < domain.HoursPerDay; h++ {
			resp.Charts.HourOfDay[h]++
		}
	}

	resp.TotalHours = roundTenth(resp.TotalHours)
	if resp.TotalReservations > 0 {
		resp.AvgDuration = roundTenth(resp.TotalHours / float64(resp.TotalReservations))
		resp.PreferredDay = domain.DayOfWeekLabels[argMaxInt(resp.Charts.DayOfWeek)]
		resp.PreferredHour = fmt.Sprintf("%dh", argMaxInt(resp.Charts.HourOfDay))
	}

	resp.RecentReservations = recentReservations(reservations)

	return resp
}

// recentReservations возвращает до 5 последних бронирований по start_time
func recentReservations(reservations []*domain.Reservation) []RecentReservation {
	sorted := make([]*domain.Reservation, len(reservations))
	copy(sorted, reservations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.After(sorted[j].StartTime)
	})

	limit := domain.RecentReservationsLimit
	if len(sorted) < limit {
		limit = len(sorted)
	}

	recent := make([]RecentReservation, 0, limit)
	for _, r := range sorted[:limit] {
		recent = append(recent, RecentReservation{
			ID:        r.ID,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Note:      r.Note,
		})
	}

	return recent
}

// roundTenth округляет до одного знака после запятой
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// argMaxInt возвращает индекс максимального значения
// При равенстве побеждает наименьший индекс
func argMaxInt(values []int) int {
	max := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[max] {
			max = i
		}
	}
	return max
}
