package get_occupancy_summary

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// UseCase use case расчёта сводки занятости пространства
type UseCase struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute считает сводку занятости по бакетам выбранной гранулярности
// Чтение выполняется одним bulk-запросом без блокировок: агрегация
// толерантна к слегка устаревшему снимку данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("OccupancySummary: granularity=%s", req.Granularity)

	reservations, err := uc.reservationRepo.List(ctx, domain.ReservationsFilter{})
	if err != nil {
		uc.logger.Error("OccupancySummary: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	resp, err := aggregate(reservations, req.Granularity, uc.timeProvider.Now().UTC())
	if err != nil {
		uc.logger.Warn("OccupancySummary: aggregation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("OccupancySummary: aggregated %d reservations into %d buckets",
		len(reservations), len(resp.Labels))
	return resp, nil
}
