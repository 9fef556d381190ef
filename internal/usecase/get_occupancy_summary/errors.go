package get_occupancy_summary

import "errors"

var (
	// ErrInvalidGranularity возвращается при неизвестной гранулярности агрегации
	ErrInvalidGranularity = errors.New("get_occupancy_summary: invalid granularity")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_occupancy_summary: internal error")
)
