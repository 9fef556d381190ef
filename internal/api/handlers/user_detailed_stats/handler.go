package user_detailed_stats

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomReservationService/internal/api/middleware"
	userStats "github.com/m04kA/SMC-RoomReservationService/internal/usecase/get_user_stats"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgUnauthorized  = "требуется аутентификация"
	msgForbidden     = "детальная статистика доступна только самому пользователю"
)

type Handler struct {
	useCase UserStatsUseCase
	logger  Logger
}

func NewHandler(useCase UserStatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestingUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Извлекаем userId из URL
	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/stats - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &userStats.Request{
		UserID:           userID,
		RequestingUserID: requestingUserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, userStats.ErrAccessDenied):
			h.logger.Warn("GET /users/{id}/stats - Access denied: user_id=%d, requested_by=%d",
				userID, requestingUserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, userStats.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/stats - Invalid input: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidUserID)

		default:
			h.logger.Error("GET /users/{id}/stats - Failed to build stats: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/stats - Stats built: user_id=%d, total=%d",
		userID, result.TotalReservations)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
