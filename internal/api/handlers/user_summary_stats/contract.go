package user_summary_stats

import (
	"context"

	usersSummary "github.com/m04kA/SMC-RoomReservationService/internal/usecase/get_users_summary"
)

type UsersSummaryUseCase interface {
	Execute(ctx context.Context) (*usersSummary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
