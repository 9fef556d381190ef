package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidRange возвращается, когда начало интервала не раньше конца
	ErrInvalidRange = errors.New("create_reservation: start time must be before end time")

	// ErrPastStart возвращается при попытке забронировать интервал, начинающийся в прошлом
	ErrPastStart = errors.New("create_reservation: start time is in the past")

	// ErrSlotTaken возвращается, когда интервал пересекается с существующим бронированием
	ErrSlotTaken = errors.New("create_reservation: time slot is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
