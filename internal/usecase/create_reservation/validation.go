package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}

// validateInterval проверяет инвариант startTime < endTime
func validateInterval(start, end time.Time) error {
	if !start.Before(end) {
		return ErrInvalidRange
	}
	return nil
}

// validateNotInPast проверяет, что начало интервала не в прошлом
// Бронирование задним числом не имеет смысла
func validateNotInPast(start, now time.Time) error {
	if start.Before(now) {
		return ErrPastStart
	}
	return nil
}
