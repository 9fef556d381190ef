package user_detailed_stats

import (
	"context"

	userStats "github.com/m04kA/SMC-RoomReservationService/internal/usecase/get_user_stats"
)

type UserStatsUseCase interface {
	Execute(ctx context.Context, req *userStats.Request) (*userStats.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
