package get_occupancy_summary

import "github.com/m04kA/SMC-RoomReservationService/internal/domain"

// Request модель запроса сводки занятости
type Request struct {
	Granularity domain.Granularity // Схема разбиения на бакеты
}

// Response сводка занятости по бакетам выбранной гранулярности
type Response struct {
	Granularity domain.Granularity // Выбранная гранулярность
	Labels      []string           // Названия бакетов
	Counts      []int              // Количество бронирований на бакет
	Hours       []float64          // Занятые часы на бакет
	Percentages []float64          // Процент занятости на бакет

	// Morning/Afternoon разбивка по половинам дня, заполняется только
	// для weekly гранулярности
	Morning   []int `json:",omitempty"`
	Afternoon []int `json:",omitempty"`

	MostOccupiedBucket string  // Название бакета с максимальной занятостью
	PeakHour           string  // Пиковый час в пределах рабочего дня, например "14h - 15h"
	AverageOccupancy   float64 // Средний процент занятости за год
}
