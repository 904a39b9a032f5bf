package process_message

import "errors"

var (
	// ErrInvalidInput возвращается при пустом сообщении
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
