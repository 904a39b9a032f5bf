package cancel_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/HMS-ChatbotService/internal/domain"
	bookingRepo "github.com/m04kA/HMS-ChatbotService/internal/infra/storage/booking"
	"github.com/m04kA/HMS-ChatbotService/internal/normalize"
)

// UseCase use case отмены записи на прием
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отмены записи.
// Удаляется ровно одна запись, совпавшая по телефону, врачу, дате
// и времени. Дата и время приводятся к каноничной форме по возможности:
// запись могла быть выбрана из списка, где реквизиты уже каноничные,
// либо введена заново от руки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if strings.TrimSpace(req.DoctorName) == "" {
		return nil, fmt.Errorf("%w: doctor name is required", ErrInvalidInput)
	}

	phone, ok := normalize.Phone(req.Phone)
	if !ok {
		uc.logger.Warn("CancelAppointment: invalid phone")
		return nil, fmt.Errorf("%w: phone must contain at least %d digits", ErrInvalidInput, domain.PhoneDigits)
	}

	// 2. Каноникализация с откатом на исходный ввод
	date := req.Date
	if normalized, err := normalize.Date(req.Date, uc.timeProvider.Now()); err == nil {
		date = normalized
	} else {
		date = strings.TrimSpace(date)
	}

	timeSlot := req.Time
	if normalized, err := normalize.Time(req.Time); err == nil {
		timeSlot = normalized
	} else {
		timeSlot = strings.TrimSpace(timeSlot)
	}

	doctorName := strings.TrimSpace(req.DoctorName)

	// 3. Точечное удаление одной записи
	err := uc.bookingRepo.DeleteFirstMatch(ctx, phone, doctorName, date, timeSlot)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelAppointment: no booking for doctor=%s date=%s time=%s", doctorName, date, timeSlot)
			return nil, ErrNoMatchingBooking
		}
		uc.logger.Error("CancelAppointment: failed to delete booking: %v", err)
		return nil, fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelAppointment: cancelled doctor=%s date=%s time=%s", doctorName, date, timeSlot)

	return &Response{
		DoctorName: doctorName,
		Date:       date,
		Time:       timeSlot,
		Phone:      phone,
	}, nil
}
