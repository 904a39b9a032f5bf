package appointments

import (
	"context"

	"github.com/m04kA/HMS-ChatbotService/internal/domain"
)

// BookingRepository интерфейс репозитория записей на прием
type BookingRepository interface {
	ListByPhone(ctx context.Context, phone string) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
