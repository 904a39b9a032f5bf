package get_upcoming_days

import (
	"context"

	upcomingDays "github.com/m04kA/HMS-ChatbotService/internal/usecase/upcoming_days"
)

type UpcomingDaysUseCase interface {
	Execute(ctx context.Context, req *upcomingDays.Request) (*upcomingDays.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
