package get_occupancy_summary

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// bucketScheme параметризует агрегацию по бакетам: названия, таблица
// доступных часов и функция выбора бакета по времени начала бронирования.
// Все пять гранулярностей проходят через один и тот же цикл накопления
// вместо пяти независимых реализаций
type bucketScheme struct {
	labels []string

	// keyFor возвращает индекс бакета для бронирования, -1 - пропустить
	keyFor func(start time.Time) int

	// possibleHours ёмкость бакета в рабочих часах; nil - процент
	// считается как доля бакета от общего числа занятых часов (hourOfDay)
	possibleHours []float64

	// perOccurrence ёмкость умножается на число бронирований в бакете
	// (dayOfWeek: 8 рабочих часов на каждое попадание в день недели)
	perOccurrence bool
}

// schemeFor строит схему бакетов для гранулярности относительно момента now
func schemeFor(granularity domain.Granularity, now time.Time) (bucketScheme, error) {
	switch granularity {
	case domain.GranularityWeekly:
		labels := make([]string, domain.WeeksPerMonth)
		possible := make([]float64, domain.WeeksPerMonth)
		for i := range labels {
			labels[i] = fmt.Sprintf("Week %d", i+1)
			possible[i] = domain.WeeklyPossibleHours
		}
		return bucketScheme{
			labels:        labels,
			possibleHours: possible,
			keyFor: func(start time.Time) int {
				week := (start.Day() - 1) / 7
				if week >= domain.WeeksPerMonth {
					return -1
				}
				return week
			},
		}, nil

	case domain.GranularityMonthly:
		possible := make([]float64, domain.MonthsPerYear)
		copy(possible, domain.MonthlyPossibleHours[:])
		return bucketScheme{
			labels:        domain.MonthLabels[:],
			possibleHours: possible,
			keyFor: func(start time.Time) int {
				return int(start.Month()) - 1
			},
		}, nil

	case domain.GranularityYearly:
		firstYear := now.Year() - (domain.YearlyBucketCount - 1)
		labels := make([]string, domain.YearlyBucketCount)
		possible := make([]float64, domain.YearlyBucketCount)
		for i := range labels {
			labels[i] = fmt.Sprintf("%d", firstYear+i)
			possible[i] = domain.YearlyPossibleHours
		}
		return bucketScheme{
			labels:        labels,
			possibleHours: possible,
			keyFor: func(start time.Time) int {
				idx := start.Year() - firstYear
				if idx < 0 || idx >= domain.YearlyBucketCount {
					return -1
				}
				return idx
			},
		}, nil

	case domain.GranularityDayOfWeek:
		possible := make([]float64, domain.DaysPerWeek)
		for i := range possible {
			possible[i] = domain.DayOfWeekPossibleHours
		}
		return bucketScheme{
			labels:        domain.DayOfWeekLabels[:],
			possibleHours: possible,
			perOccurrence: true,
			keyFor: func(start time.Time) int {
				// time.Weekday: 0 = Sunday; переводим к неделе с понедельника
				return (int(start.Weekday()) + 6) % 7
			},
		}, nil

	case domain.GranularityHourOfDay:
		labels := make([]string, domain.HoursPerDay)
		for i := range labels {
			labels[i] = fmt.Sprintf("%dh", i)
		}
		return bucketScheme{
			labels: labels,
			keyFor: func(start time.Time) int {
				return start.Hour()
			},
		}, nil

	default:
		return bucketScheme{}, ErrInvalidGranularity
	}
}

// aggregate считает сводку занятости по бакетам выбранной гранулярности.
// Чистая функция от набора бронирований и момента now: повторный вызов
// на неизменных данных возвращает побитово идентичный результат
func aggregate(reservations []*domain.Reservation, granularity domain.Granularity, now time.Time) (*Response, error) {
	scheme, err := schemeFor(granularity, now)
	if err != nil {
		return nil, err
	}

	size := len(scheme.labels)
	counts := make([]int, size)
	hours := make([]float64, size)
	morning := make([]int, size)
	afternoon := make([]int, size)

	// Почасовое распределение считается всегда: из него выводится пиковый час
	hourly := make([]int, domain.HoursPerDay)

	oneYearAgo := now.AddDate(-1, 0, 0)
	totalOccupiedHours := 0.0

	for _, r := range reservations {
		// Бронирования, закончившиеся более года назад, не учитываются
		if r.EndTime.Before(oneYearAgo) {
			continue
		}

		duration := r.DurationHours()
		totalOccupiedHours += duration

		if granularity == domain.GranularityHourOfDay {
			// Каждый целый час от start.Hour() до end.Hour() включительно,
			// минуты и переход через полночь игнорируются. Приближение:
			// интервал 23:00-01:00 недосчитывает часы следующего дня
			accumulateHourly(counts, r)
		} else {
			key := scheme.keyFor(r.StartTime)
			if key < 0 {
				continue
			}
			counts[key]++
			hours[key] += duration

			if r.StartTime.Hour() < 12 {
				morning[key]++
			} else {
				afternoon[key]++
			}
		}

		accumulateHourly(hourly, r)
	}

	percentages := make([]float64, size)
	switch {
	case granularity == domain.GranularityHourOfDay:
		// Процент = доля бакета от общего числа занятых часов
		total := 0
		for _, c := range counts {
			total += c
		}
		for i, c := range counts {
			if total > 0 {
				percentages[i] = float64(c) / float64(total) * 100
			}
			// Каждый инкремент соответствует одному занятому часу
			hours[i] = float64(c)
		}
	case scheme.perOccurrence:
		for i := range percentages {
			if counts[i] > 0 {
				percentages[i] = hours[i] / (scheme.possibleHours[i] * float64(counts[i])) * 100
			}
		}
	default:
		for i := range percentages {
			if scheme.possibleHours[i] > 0 {
				percentages[i] = hours[i] / scheme.possibleHours[i] * 100
			}
		}
	}

	resp := &Response{
		Granularity:        granularity,
		Labels:             scheme.labels,
		Counts:             counts,
		Hours:              hours,
		Percentages:        percentages,
		MostOccupiedBucket: scheme.labels[argMaxFloat(percentages)],
		PeakHour:           peakHourLabel(hourly),
		AverageOccupancy:   totalOccupiedHours / (domain.BusinessHoursPerWeek * domain.WeeksPerYear) * 100,
	}

	if granularity == domain.GranularityWeekly {
		resp.Morning = morning
		resp.Afternoon = afternoon
	}

	return resp, nil
}

// accumulateHourly инкрементирует счётчик каждого целого часа
// от start.Hour() до end.Hour() включительно
func accumulateHourly(hourly []int, r *domain.Reservation) {
	for h := r.StartTime.Hour(); h <= r.EndTime.Hour(); h++ {
		if h < domain.HoursPerDay {
			hourly[h]++
		}
	}
}

// peakHourLabel возвращает пиковый час в пределах рабочего дня (8..17)
// При равенстве побеждает наименьший час
func peakHourLabel(hourly []int) string {
	peak := domain.BusinessDayStartHour
	for h := domain.BusinessDayStartHour + 1; h <= domain.BusinessDayEndHour; h++ {
		if hourly[h] > hourly[peak] {
			peak = h
		}
	}
	return fmt.Sprintf("%dh - %dh", peak, peak+1)
}

// argMaxFloat возвращает индекс максимального значения
// При равенстве побеждает наименьший индекс
func argMaxFloat(values []float64) int {
	max := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[max] {
			max = i
		}
	}
	return max
}
