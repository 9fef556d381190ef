package occupancy_summary

import (
	"context"

	occupancySummary "github.com/m04kA/SMC-RoomReservationService/internal/usecase/get_occupancy_summary"
)

type OccupancySummaryUseCase interface {
	Execute(ctx context.Context, req *occupancySummary.Request) (*occupancySummary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
