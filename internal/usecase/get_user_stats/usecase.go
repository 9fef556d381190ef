package get_user_stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/internal/integrations/userservice"
	"github.com/m04kA/SMC-RoomReservationService/pkg/ptr"
)

// UseCase use case детальной статистики бронирований пользователя
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

// Execute выполняет use case получения детальной статистики
// Детальная статистика доступна только самому пользователю
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetUserStats: user=%d, requested_by=%d", req.UserID, req.RequestingUserID)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	if req.UserID != req.RequestingUserID {
		uc.logger.Warn("GetUserStats: access denied for user=%d requested_by=%d",
			req.UserID, req.RequestingUserID)
		return nil, ErrAccessDenied
	}

	reservations, err := uc.reservationRepo.List(ctx, domain.ReservationsFilter{
		UserID: ptr.Ptr(req.UserID),
	})
	if err != nil {
		uc.logger.Error("GetUserStats: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	resp := computeStats(reservations, uc.timeProvider.Now().UTC())
	resp.UserID = req.UserID
	resp.UserName = uc.resolveUserName(ctx, req.UserID)

	uc.logger.Info("GetUserStats: user=%d, total=%d, upcoming=%d",
		req.UserID, resp.TotalReservations, resp.UpcomingReservations)
	return resp, nil
}

// resolveUserName подтягивает отображаемое имя из UserService
// При деградации сервиса имя остается пустым, статистика отдается без него
func (uc *UseCase) resolveUserName(ctx context.Context, userID int64) string {
	user, err := uc.userServiceClient.GetUserWithGracefulDegradation(ctx, userID)
	if err != nil {
		if !errors.Is(err, userservice.ErrUserNotFound) {
			uc.logger.Warn("GetUserStats: proceeding without user name for user=%d: %v", userID, err)
		}
		return ""
	}

	return user.Name
}
