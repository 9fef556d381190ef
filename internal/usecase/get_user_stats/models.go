package get_user_stats

import "time"

// Request модель запроса детальной статистики пользователя
type Request struct {
	UserID           int64 // ID пользователя, чья статистика запрашивается
	RequestingUserID int64 // ID аутентифицированного пользователя
}

// Charts распределения бронирований пользователя по календарным осям
type Charts struct {
	Monthly   []int // Бронирования по месяцам текущего года (Jan..Dec)
	DayOfWeek []int // Бронирования по дням недели (Monday..Sunday)
	HourOfDay []int // Занятые часы по часам суток (0..23)
}

// RecentReservation краткая запись о недавнем бронировании
type RecentReservation struct {
	ID        int64
	StartTime time.Time
	EndTime   time.Time
	Note      *string
}

// Response детальная статистика бронирований пользователя
type Response struct {
	UserID   int64
	UserName string // Отображаемое имя; пустое при деградации UserService

	TotalReservations    int
	UpcomingReservations int     // Бронирования с end > now
	PastReservations     int     // Завершившиеся бронирования
	TotalHours           float64 // Суммарная длительность, округлена до 0.1
	AvgDuration          float64 // Средняя длительность в часах, округлена до 0.1

	PreferredDay  string // День недели с максимумом бронирований
	PreferredHour string // Час суток с максимумом занятых часов, например "14h"

	Charts Charts

	RecentReservations []RecentReservation // До 5 последних по start_time
}
