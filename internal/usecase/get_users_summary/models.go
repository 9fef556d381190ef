package get_users_summary

// UserSummary сводная статистика бронирований одного пользователя
type UserSummary struct {
	UserID     int64
	Name       string  // Пустое при деградации UserService
	Department *string // Из профиля UserService (опционально)
	Position   *string // Из профиля UserService (опционально)

	TotalReservations    int
	TotalHours           float64 // Суммарная длительность, округлена до 0.1
	UpcomingReservations int     // Бронирования с end > now
}

// Response сводная статистика по всем известным пользователям
type Response struct {
	Users []UserSummary
}
