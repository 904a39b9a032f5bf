package doctors

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден по имени
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("doctors service: internal error")
)
