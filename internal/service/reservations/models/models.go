package models

import (
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// Статусы занятости пространства
const (
	StatusFree     = "free"
	StatusOccupied = "occupied"
)

// Request модели

// ListReservationsRequest запрос на получение списка бронирований
type ListReservationsRequest struct {
	UserID *int64     `json:"userId,omitempty"` // Фильтр по владельцу (опционально)
	From   *time.Time `json:"from,omitempty"`   // Начало периода (опционально)
	To     *time.Time `json:"to,omitempty"`     // Конец периода (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() domain.ReservationsFilter {
	return domain.ReservationsFilter{
		UserID: r.UserID,
		From:   r.From,
		To:     r.To,
	}
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	UserName  string    `json:"userName,omitempty"` // Пустое при недоступности UserService
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// CurrentStatusResponse ответ с текущим статусом пространства
type CurrentStatusResponse struct {
	Status      string               `json:"status"` // free | occupied
	Reservation *ReservationResponse `json:"reservation,omitempty"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Note:      r.Note,
		CreatedAt: r.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	if reservations == nil {
		return &ReservationListResponse{
			Reservations: []ReservationResponse{},
		}
	}

	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
	}

	for i, reservation := range reservations {
		if reservationResp := FromDomainReservation(reservation); reservationResp != nil {
			resp.Reservations[i] = *reservationResp
		}
	}

	return resp
}
