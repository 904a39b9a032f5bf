package open_slots

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/HMS-ChatbotService/internal/normalize"
	"github.com/m04kA/HMS-ChatbotService/internal/service/doctors"
)

// UseCase use case получения свободных слотов врача на дату
type UseCase struct {
	doctorResolver DoctorResolver
	bookingRepo    BookingRepository
	slotMinutes    int
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	doctorResolver DoctorResolver,
	bookingRepo BookingRepository,
	slotMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		doctorResolver: doctorResolver,
		bookingRepo:    bookingRepo,
		slotMinutes:    slotMinutes,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if strings.TrimSpace(req.DoctorName) == "" {
		return nil, fmt.Errorf("%w: doctor name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Date) == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Приводим дату к каноничной форме
	date, err := normalize.Date(req.Date, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("OpenSlots: unparseable date %q", req.Date)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Находим врача
	doctor, err := uc.doctorResolver.ResolveByName(ctx, req.DoctorName)
	if err != nil {
		if errors.Is(err, doctors.ErrDoctorNotFound) {
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("OpenSlots: failed to resolve doctor %q: %v", req.DoctorName, err)
		return nil, fmt.Errorf("%w: failed to resolve doctor: %v", ErrInternal, err)
	}

	// 4. Получаем занятые времена на эту дату
	booked, err := uc.bookingRepo.ListByDoctorAndDate(ctx, doctor.Name, date)
	if err != nil {
		uc.logger.Error("OpenSlots: failed to list bookings for doctor=%s date=%s: %v", doctor.Name, date, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 5. Генерируем сетку слотов и вычитаем занятые
	grid := slotGrid(doctor, uc.slotMinutes, uc.logger)
	free := freeSlots(grid, booked)

	uc.logger.Info("OpenSlots: doctor=%s date=%s free=%d/%d", doctor.Name, date, len(free), len(grid))

	return &Response{
		DoctorName: doctor.Name,
		Date:       date,
		Slots:      free,
	}, nil
}
