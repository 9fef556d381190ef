package user_summary_stats

import (
	"net/http"

	"github.com/m04kA/SMC-RoomReservationService/internal/api/handlers"
)

type Handler struct {
	useCase UsersSummaryUseCase
	logger  Logger
}

func NewHandler(useCase UsersSummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /users/stats - Failed to build users summary: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/stats - Users summary built: count=%d", len(result.Users))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
