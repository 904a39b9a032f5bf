package cancel_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrNoMatchingBooking возвращается, когда подходящая запись не найдена
	ErrNoMatchingBooking = errors.New("no matching booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
