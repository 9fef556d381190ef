package domain

import "time"

// Reservation represents a booking of the shared space for a time interval.
// Intervals are half-open: [StartTime, EndTime).
type Reservation struct {
	ID        int64
	UserID    int64
	StartTime time.Time
	EndTime   time.Time
	Note      *string
	CreatedAt time.Time

	// UserName отображаемое имя владельца, подтягивается из UserService
	// при чтении; в БД не хранится
	UserName string
}

// Duration returns the reservation length.
func (r *Reservation) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// DurationHours returns the reservation length in hours.
func (r *Reservation) DurationHours() float64 {
	return r.Duration().Hours()
}

// Overlaps reports whether the reservation overlaps [start, end).
// Touching boundaries (r.EndTime == start or end == r.StartTime) do not overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && r.EndTime.After(start)
}

// Covers reports whether at falls inside [StartTime, EndTime).
func (r *Reservation) Covers(at time.Time) bool {
	return !r.StartTime.After(at) && r.EndTime.After(at)
}

// IsUpcoming reports whether the reservation has not ended yet.
func (r *Reservation) IsUpcoming(now time.Time) bool {
	return r.EndTime.After(now)
}

// ReservationsFilter фильтр для выборки бронирований
type ReservationsFilter struct {
	UserID *int64     // Фильтр по владельцу (опционально)
	From   *time.Time // Нижняя граница периода: end_time > From (опционально)
	To     *time.Time // Верхняя граница периода: start_time < To (опционально)
}
