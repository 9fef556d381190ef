package get_user_stats

import "errors"

var (
	// ErrInvalidInput возвращается при ошибке валидации входных данных
	ErrInvalidInput = errors.New("get_user_stats: invalid input")

	// ErrAccessDenied возвращается при попытке просмотра чужой статистики
	ErrAccessDenied = errors.New("get_user_stats: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_user_stats: internal error")
)
