package whatsapp

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrSendFailed возвращается, когда API отклонил отправку сообщения
	ErrSendFailed = errors.New("whatsapp client: send failed")
)
