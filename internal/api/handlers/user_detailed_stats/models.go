package user_detailed_stats

import (
	"time"

	userStats "github.com/m04kA/SMC-RoomReservationService/internal/usecase/get_user_stats"
)

// Charts распределения бронирований по календарным осям
type Charts struct {
	Monthly   []int `json:"monthly"`
	DayOfWeek []int `json:"dayOfWeek"`
	HourOfDay []int `json:"hourOfDay"`
}

// Stats детальные показатели бронирований пользователя
type Stats struct {
	TotalReservations    int     `json:"totalReservations"`
	UpcomingReservations int     `json:"upcomingReservations"`
	PastReservations     int     `json:"pastReservations"`
	TotalHours           float64 `json:"totalHours"`
	AvgDuration          float64 `json:"avgDuration"`
	PreferredDay         string  `json:"preferredDay"`
	PreferredHour        string  `json:"preferredHour"`
	Charts               Charts  `json:"charts"`
}

// RecentReservationResponse краткая запись о недавнем бронировании
type RecentReservationResponse struct {
	ID        int64     `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Note      *string   `json:"note,omitempty"`
}

// UserStatsResponse HTTP response model
type UserStatsResponse struct {
	ID                 int64                       `json:"id"`
	Name               string                      `json:"name,omitempty"` // Пустое при недоступности UserService
	Stats              Stats                       `json:"stats"`
	RecentReservations []RecentReservationResponse `json:"recentReservations"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *userStats.Response) *UserStatsResponse {
	recent := make([]RecentReservationResponse, len(resp.RecentReservations))
	for i, r := range resp.RecentReservations {
		recent[i] = RecentReservationResponse{
			ID:        r.ID,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Note:      r.Note,
		}
	}

	return &UserStatsResponse{
		ID:   resp.UserID,
		Name: resp.UserName,
		Stats: Stats{
			TotalReservations:    resp.TotalReservations,
			UpcomingReservations: resp.UpcomingReservations,
			PastReservations:     resp.PastReservations,
			TotalHours:           resp.TotalHours,
			AvgDuration:          resp.AvgDuration,
			PreferredDay:         resp.PreferredDay,
			PreferredHour:        resp.PreferredHour,
			Charts: Charts{
				Monthly:   resp.Charts.Monthly,
				DayOfWeek: resp.Charts.DayOfWeek,
				HourOfDay: resp.Charts.HourOfDay,
			},
		},
		RecentReservations: recent,
	}
}
