package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RoomReservationService/internal/infra/storage/reservation"
	userClient "github.com/m04kA/SMC-RoomReservationService/internal/integrations/userservice"
	"github.com/m04kA/SMC-RoomReservationService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями общего пространства
type Service struct {
	reservationRepo ReservationRepository
	userClient      UserServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	userClient UserServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		userClient:      userClient,
		logger:          logger,
	}
}

// List получает список бронирований с подставленными именами владельцев
// Повторный вызов без изменений данных возвращает идентичный упорядоченный результат
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations, user=%v, from=%v, to=%v", req.UserID, req.From, req.To)

	reservations, err := s.reservationRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.resolveUserNames(ctx, reservations)

	s.logger.Info("List: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// Delete удаляет бронирование
// Удалить бронирование может только его владелец
func (s *Service) Delete(ctx context.Context, reservationID int64, requestingUserID int64) error {
	s.logger.Info("Delete: deleting reservation id=%d by user=%d", reservationID, requestingUserID)

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа - удалять может только владелец
	if reservation.UserID != requestingUserID {
		s.logger.Warn("Delete: access denied for user=%d to reservation id=%d (owner=%d)",
			requestingUserID, reservationID, reservation.UserID)
		return ErrAccessDenied
	}

	if err := s.reservationRepo.Delete(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found during deletion", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", reservationID)
	return nil
}

// CurrentStatus возвращает текущий статус пространства на момент now:
// occupied с действующим бронированием или free.
// По инварианту отсутствия пересечений действующее бронирование максимум одно
func (s *Service) CurrentStatus(ctx context.Context, now time.Time) (*models.CurrentStatusResponse, error) {
	reservation, err := s.reservationRepo.GetActiveAt(ctx, now)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return &models.CurrentStatusResponse{Status: models.StatusFree}, nil
		}
		s.logger.Error("CurrentStatus: repository error: %v", err)
		return nil, fmt.Errorf("%w: CurrentStatus - repository error: %v", ErrInternal, err)
	}

	// Подставляем имя владельца; при недоступности UserService статус
	// возвращается без имени
	user, err := s.userClient.GetUserWithGracefulDegradation(ctx, reservation.UserID)
	if err == nil {
		reservation.UserName = user.Name
	}

	return &models.CurrentStatusResponse{
		Status:      models.StatusOccupied,
		Reservation: models.FromDomainReservation(reservation),
	}, nil
}

// resolveUserNames подставляет отображаемые имена владельцев из UserService
// При недоступности UserService имена остаются пустыми (graceful degradation)
func (s *Service) resolveUserNames(ctx context.Context, reservations []*domain.Reservation) {
	if len(reservations) == 0 {
		return
	}

	users, err := s.userClient.ListUsersWithGracefulDegradation(ctx)
	if err != nil {
		if errors.Is(err, userClient.ErrServiceDegraded) {
			s.logger.Warn("resolveUserNames: user names unavailable, returning reservations without names")
			return
		}
		s.logger.Error("resolveUserNames: unexpected userservice error: %v", err)
		return
	}

	namesByID := make(map[int64]string, len(users))
	for _, user := range users {
		namesByID[user.ID] = user.Name
	}

	for _, reservation := range reservations {
		reservation.UserName = namesByID[reservation.UserID]
	}
}
