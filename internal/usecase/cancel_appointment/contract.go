package cancel_appointment

import (
	"context"
	"time"
)

// BookingRepository интерфейс репозитория записей на прием
type BookingRepository interface {
	DeleteFirstMatch(ctx context.Context, phone, doctorName, date, timeSlot string) error
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
