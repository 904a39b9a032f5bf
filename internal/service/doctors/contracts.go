package doctors

import (
	"context"

	"github.com/m04kA/HMS-ChatbotService/internal/domain"
)

// DoctorRepository интерфейс репозитория справочника врачей
type DoctorRepository interface {
	ListAll(ctx context.Context) ([]*domain.Doctor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
