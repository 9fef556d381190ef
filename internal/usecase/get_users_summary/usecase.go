package get_users_summary

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// UseCase use case сводной статистики по всем пользователям
type UseCase struct {
	reservationRepo   ReservationRepository
	userServiceClient UserServiceClient
	timeProvider      TimeProvider
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	userServiceClient UserServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:   reservationRepo,
		userServiceClient: userServiceClient,
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
	}
}

// Execute собирает сводную статистику для каждого известного пользователя:
// объединение списка из UserService и владельцев бронирований.
// При деградации UserService строки строятся только по данным бронирований
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	uc.logger.Info("GetUsersSummary: started")

	reservations, err := uc.reservationRepo.List(ctx, domain.ReservationsFilter{})
	if err != nil {
		uc.logger.Error("GetUsersSummary: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now().UTC()

	summaries := make(map[int64]*UserSummary)
	for _, r := range reservations {
		s, ok := summaries[r.UserID]
		if !ok {
			s = &UserSummary{UserID: r.UserID}
			summaries[r.UserID] = s
		}

		s.TotalReservations++
		s.TotalHours += r.DurationHours()
		if r.IsUpcoming(now) {
			s.UpcomingReservations++
		}
	}

	users, err := uc.userServiceClient.ListUsersWithGracefulDegradation(ctx)
	if err != nil {
		uc.logger.Warn("GetUsersSummary: proceeding without user profiles: %v", err)
	}

	for _, u := range users {
		s, ok := summaries[u.ID]
		if !ok {
			s = &UserSummary{UserID: u.ID}
			summaries[u.ID] = s
		}

		s.Name = u.Name
		s.Department = u.Department
		s.Position = u.Position
	}

	result := make([]UserSummary, 0, len(summaries))
	for _, s := range summaries {
		s.TotalHours = math.Round(s.TotalHours*10) / 10
		result = append(result, *s)
	}

	// Самые активные пользователи первыми; при равенстве порядок стабилен по ID
	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalReservations != result[j].TotalReservations {
			return result[i].TotalReservations > result[j].TotalReservations
		}
		return result[i].UserID < result[j].UserID
	})

	uc.logger.Info("GetUsersSummary: built %d rows from %d reservations", len(result), len(reservations))

	return &Response{Users: result}, nil
}
