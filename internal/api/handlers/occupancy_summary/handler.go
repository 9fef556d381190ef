package occupancy_summary

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	occupancySummary "github.com/m04kA/SMC-RoomReservationService/internal/usecase/get_occupancy_summary"
)

const (
	msgInvalidGranularity = "некорректная гранулярность, ожидается weekly|monthly|yearly|dayOfWeek|hourOfDay"
)

type Handler struct {
	useCase OccupancySummaryUseCase
	logger  Logger
}

func NewHandler(useCase OccupancySummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/occupancy/summary
// Query params: granularity (weekly|monthly|yearly|dayOfWeek|hourOfDay)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	granularityStr := r.URL.Query().Get("granularity")
	if granularityStr == "" {
		granularityStr = string(domain.GranularityWeekly)
	}

	granularity, err := domain.ParseGranularity(granularityStr)
	if err != nil {
		h.logger.Warn("GET /occupancy/summary - Invalid granularity: %q", granularityStr)
		handlers.RespondBadRequest(w, msgInvalidGranularity)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &occupancySummary.Request{Granularity: granularity})
	if err != nil {
		switch {
		case errors.Is(err, occupancySummary.ErrInvalidGranularity):
			h.logger.Warn("GET /occupancy/summary - Invalid granularity: %q", granularityStr)
			handlers.RespondBadRequest(w, msgInvalidGranularity)

		default:
			h.logger.Error("GET /occupancy/summary - Failed to build summary: granularity=%s, error=%v",
				granularity, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /occupancy/summary - Summary built: granularity=%s, buckets=%d",
		granularity, len(result.Labels))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
