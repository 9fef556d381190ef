package current_status

import (
	"net/http"

	"github.com/m04kA/SMC-RoomReservationService/internal/api/handlers"
)

type Handler struct {
	service      ReservationService
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service:      service,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Handle GET /api/v1/current-status
// Публичный endpoint: статус пространства виден без аутентификации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.CurrentStatus(r.Context(), h.timeProvider.Now().UTC())
	if err != nil {
		h.logger.Error("GET /current-status - Failed to get current status: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /current-status - Status retrieved: %s", result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
