package process_message

import (
	"context"

	"github.com/m04kA/HMS-ChatbotService/internal/domain"
	"github.com/m04kA/HMS-ChatbotService/internal/integrations/whatsapp"
	"github.com/m04kA/HMS-ChatbotService/internal/usecase/book_appointment"
	"github.com/m04kA/HMS-ChatbotService/internal/usecase/cancel_appointment"
	"github.com/m04kA/HMS-ChatbotService/internal/usecase/open_slots"
	"github.com/m04kA/HMS-ChatbotService/internal/usecase/upcoming_days"
)

// SessionStore интерфейс хранилища сессий диалога
type SessionStore interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id string) error
}

// DoctorDirectory интерфейс справочника врачей
type DoctorDirectory interface {
	Specializations(ctx context.Context) ([]string, error)
	BySpecialization(ctx context.Context, specialization string) ([]*domain.Doctor, error)
}

// AppointmentFinder интерфейс поиска существующих записей
type AppointmentFinder interface {
	FindByPhone(ctx context.Context, phone string) ([]*domain.Booking, error)
}

// DayPlanner интерфейс use case ближайших рабочих дней врача
type DayPlanner interface {
	Execute(ctx context.Context, req *upcoming_days.Request) (*upcoming_days.Response, error)
}

// SlotFinder интерфейс use case свободных слотов
type SlotFinder interface {
	Execute(ctx context.Context, req *open_slots.Request) (*open_slots.Response, error)
}

// Booker интерфейс use case создания записи
type Booker interface {
	Execute(ctx context.Context, req *book_appointment.Request) (*book_appointment.Response, error)
}

// Canceller интерфейс use case отмены записи
type Canceller interface {
	Execute(ctx context.Context, req *cancel_appointment.Request) (*cancel_appointment.Response, error)
}

// Notifier интерфейс отправки уведомлений WhatsApp
type Notifier interface {
	SendConfirmation(ctx context.Context, phone, doctorName, date, timeSlot string) (*whatsapp.Result, error)
	SendCancellation(ctx context.Context, phone, doctorName, date, timeSlot string) (*whatsapp.Result, error)
}

// Metrics интерфейс счетчиков диалога
type Metrics interface {
	IncTurn(intent string)
	IncBooking()
	IncCancellation()
	IncNotification(kind, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
