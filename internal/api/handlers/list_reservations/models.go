package list_reservations

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/internal/service/reservations/models"
)

// ToServiceRequest парсит query параметры в модель сервиса
// from/to принимаются в RFC3339 или YYYY-MM-DD, userId - положительное число
func ToServiceRequest(userIDStr, fromStr, toStr string) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{}

	if userIDStr != "" {
		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			return nil, fmt.Errorf("invalid userId %q", userIDStr)
		}
		req.UserID = &userID
	}

	if fromStr != "" {
		from, err := parseTimeParam(fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid from %q: %w", fromStr, err)
		}
		req.From = &from
	}

	if toStr != "" {
		to, err := parseTimeParam(toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid to %q: %w", toStr, err)
		}
		req.To = &to
	}

	return req, nil
}

func parseTimeParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}

	t, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return time.Time{}, err
	}

	return t.UTC(), nil
}
