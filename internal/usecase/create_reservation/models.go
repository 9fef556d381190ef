package create_reservation

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64     // ID пользователя (владельца бронирования)
	StartTime time.Time // Начало интервала
	EndTime   time.Time // Конец интервала (не включается)
	Note      *string   // Дополнительная заметка (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64     // ID созданного бронирования
	UserID    int64     // ID владельца
	StartTime time.Time // Начало интервала (UTC)
	EndTime   time.Time // Конец интервала (UTC)
	Note      *string   // Заметка
	CreatedAt time.Time // Время создания
}
