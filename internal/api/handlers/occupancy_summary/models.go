package occupancy_summary

import (
	occupancySummary "github.com/m04kA/SMC-RoomReservationService/internal/usecase/get_occupancy_summary"
)

// OccupancySummaryResponse HTTP response model
type OccupancySummaryResponse struct {
	Granularity string    `json:"granularity"`
	Labels      []string  `json:"labels"`
	Counts      []int     `json:"counts"`
	Hours       []float64 `json:"hours"`
	Percentages []float64 `json:"percentages"`

	Morning   []int `json:"morning,omitempty"`
	Afternoon []int `json:"afternoon,omitempty"`

	MostOccupiedBucket string  `json:"mostOccupiedBucket"`
	PeakHour           string  `json:"peakHour"`
	AverageOccupancy   float64 `json:"averageOccupancy"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *occupancySummary.Response) *OccupancySummaryResponse {
	return &OccupancySummaryResponse{
		Granularity:        string(resp.Granularity),
		Labels:             resp.Labels,
		Counts:             resp.Counts,
		Hours:              resp.Hours,
		Percentages:        resp.Percentages,
		Morning:            resp.Morning,
		Afternoon:          resp.Afternoon,
		MostOccupiedBucket: resp.MostOccupiedBucket,
		PeakHour:           resp.PeakHour,
		AverageOccupancy:   resp.AverageOccupancy,
	}
}
