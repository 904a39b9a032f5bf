package get_doctors

import (
	"context"

	"github.com/m04kA/HMS-ChatbotService/internal/domain"
)

type DoctorsService interface {
	List(ctx context.Context) ([]*domain.Doctor, error)
	BySpecialization(ctx context.Context, specialization string) ([]*domain.Doctor, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
