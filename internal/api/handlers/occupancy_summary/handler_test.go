package occupancy_summary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	occupancySummary "github.com/m04kA/SMC-RoomReservationService/internal/usecase/get_occupancy_summary"
)

type mockUseCase struct {
	resp *occupancySummary.Response
	err  error

	gotGranularity domain.Granularity
}

func (m *mockUseCase) Execute(_ context.Context, req *occupancySummary.Request) (*occupancySummary.Response, error) {
	m.gotGranularity = req.Granularity
	return m.resp, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle_Success(t *testing.T) {
	uc := &mockUseCase{
		resp: &occupancySummary.Response{
			Granularity:        domain.GranularityDayOfWeek,
			Labels:             domain.DayOfWeekLabels[:],
			Counts:             make([]int, 7),
			Hours:              make([]float64, 7),
			Percentages:        make([]float64, 7),
			MostOccupiedBucket: "Monday",
			PeakHour:           "10h - 11h",
		},
	}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/occupancy/summary?granularity=dayOfWeek", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.GranularityDayOfWeek, uc.gotGranularity)

	var body OccupancySummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "dayOfWeek", body.Granularity)
	assert.Equal(t, "Monday", body.MostOccupiedBucket)
	assert.Equal(t, "10h - 11h", body.PeakHour)
}

func TestHandler_Handle_DefaultsToWeekly(t *testing.T) {
	uc := &mockUseCase{
		resp: &occupancySummary.Response{
			Granularity: domain.GranularityWeekly,
			Labels:      []string{"Week 1", "Week 2", "Week 3", "Week 4", "Week 5"},
		},
	}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/occupancy/summary", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.GranularityWeekly, uc.gotGranularity)
}

func TestHandler_Handle_InvalidGranularity(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/occupancy/summary?granularity=daily", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// До use case дело не дошло
	assert.Empty(t, uc.gotGranularity)
}
