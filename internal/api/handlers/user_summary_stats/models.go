package user_summary_stats

import (
	usersSummary "github.com/m04kA/SMC-RoomReservationService/internal/usecase/get_users_summary"
)

// UserStats сводные показатели бронирований пользователя
type UserStats struct {
	TotalReservations    int     `json:"totalReservations"`
	TotalHours           float64 `json:"totalHours"`
	UpcomingReservations int     `json:"upcomingReservations"`
}

// UserSummaryResponse строка сводной таблицы по одному пользователю
type UserSummaryResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name,omitempty"` // Пустое при недоступности UserService
	Department *string   `json:"department,omitempty"`
	Position   *string   `json:"position,omitempty"`
	Stats      UserStats `json:"stats"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *usersSummary.Response) []UserSummaryResponse {
	result := make([]UserSummaryResponse, len(resp.Users))
	for i, u := range resp.Users {
		result[i] = UserSummaryResponse{
			ID:         u.UserID,
			Name:       u.Name,
			Department: u.Department,
			Position:   u.Position,
			Stats: UserStats{
				TotalReservations:    u.TotalReservations,
				TotalHours:           u.TotalHours,
				UpcomingReservations: u.UpcomingReservations,
			},
		}
	}

	return result
}
