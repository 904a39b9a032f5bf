package open_slots

import (
	"context"
	"time"

	"github.com/m04kA/HMS-ChatbotService/internal/domain"
)

// DoctorResolver интерфейс поиска врача по имени
type DoctorResolver interface {
	ResolveByName(ctx context.Context, query string) (*domain.Doctor, error)
}

// BookingRepository интерфейс репозитория записей на прием
type BookingRepository interface {
	ListByDoctorAndDate(ctx context.Context, doctorName, date string) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
