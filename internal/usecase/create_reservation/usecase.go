package create_reservation

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и вставка выполняются в одной сериализуемой транзакции,
// чтобы два конкурентных запроса не могли оба увидеть свободный интервал
// и оба записаться
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, start=%s, end=%s",
		req.UserID, req.StartTime.Format(domain.DateFormat+" 15:04"), req.EndTime.Format(domain.DateFormat+" 15:04"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем время к UTC - все интервалы хранятся и сравниваются в UTC
	start := req.StartTime.UTC()
	end := req.EndTime.UTC()

	// 3. Проверяем инвариант start < end
	if err := validateInterval(start, end); err != nil {
		uc.logger.Warn("CreateReservation: invalid range for user=%d", req.UserID)
		return nil, err
	}

	// 4. Проверяем, что начало не в прошлом
	now := uc.timeProvider.Now().UTC()
	if err := validateNotInPast(start, now); err != nil {
		uc.logger.Warn("CreateReservation: past start for user=%d", req.UserID)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 5. Выполняем проверку доступности и вставку в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Проверяем пересечение с существующими бронированиями (FOR UPDATE)
		exists, err := uc.reservationRepo.ExistsOverlapping(txCtx, start, end)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check overlapping: %v", err)
			return fmt.Errorf("%w: failed to check overlapping: %v", ErrInternal, err)
		}

		if exists {
			uc.logger.Warn("CreateReservation: slot taken for user=%d, start=%s",
				req.UserID, start.Format(domain.DateFormat+" 15:04"))
			return ErrSlotTaken
		}

		// 5.2. Сохраняем бронирование
		reservation := &domain.Reservation{
			UserID:    req.UserID,
			StartTime: start,
			EndTime:   end,
			Note:      req.Note,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Note:      result.Note,
		CreatedAt: result.CreatedAt,
	}, nil
}
