package get_open_slots

import (
	"context"

	openSlots "github.com/m04kA/HMS-ChatbotService/internal/usecase/open_slots"
)

type OpenSlotsUseCase interface {
	Execute(ctx context.Context, req *openSlots.Request) (*openSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
