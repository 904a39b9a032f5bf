package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/HMS-ChatbotService/internal/domain"
	bookingRepo "github.com/m04kA/HMS-ChatbotService/internal/infra/storage/booking"
	"github.com/m04kA/HMS-ChatbotService/internal/normalize"
	"github.com/m04kA/HMS-ChatbotService/internal/service/doctors"
)

// UseCase use case создания записи на прием.
// Порядок проверок фиксированный: врач, праздник больницы, отпуск врача,
// доступность слота. Пациент получает первую причину отказа, а не все сразу.
type UseCase struct {
	doctorResolver DoctorResolver
	holidayRepo    HolidayRepository
	leaveRepo      LeaveRepository
	bookingRepo    BookingRepository
	txManager      TransactionManager
	slotMinutes    int
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	doctorResolver DoctorResolver,
	holidayRepo HolidayRepository,
	leaveRepo LeaveRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	slotMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		doctorResolver: doctorResolver,
		holidayRepo:    holidayRepo,
		leaveRepo:      leaveRepo,
		bookingRepo:    bookingRepo,
		txManager:      txManager,
		slotMinutes:    slotMinutes,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: doctor=%q date=%q time=%q", req.DoctorName, req.Date, req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Приводим дату, время и телефон к каноничной форме
	date, err := normalize.Date(req.Date, now)
	if err != nil {
		uc.logger.Warn("BookAppointment: unparseable date %q", req.Date)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	timeSlot, err := normalize.Time(req.Time)
	if err != nil {
		uc.logger.Warn("BookAppointment: unparseable time %q", req.Time)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	phone, ok := normalize.Phone(req.Phone)
	if !ok {
		uc.logger.Warn("BookAppointment: invalid phone")
		return nil, fmt.Errorf("%w: phone must contain at least %d digits", ErrInvalidInput, domain.PhoneDigits)
	}

	// 3. Находим врача
	doctor, err := uc.doctorResolver.ResolveByName(ctx, req.DoctorName)
	if err != nil {
		if errors.Is(err, doctors.ErrDoctorNotFound) {
			uc.logger.Warn("BookAppointment: doctor %q not found", req.DoctorName)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("BookAppointment: failed to resolve doctor %q: %v", req.DoctorName, err)
		return nil, fmt.Errorf("%w: failed to resolve doctor: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 4. Выполняем проверки и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Праздник больницы закрывает запись для всех врачей
		if occasion, holiday, err := uc.findHoliday(txCtx, date, now); err != nil {
			return err
		} else if holiday {
			uc.logger.Warn("BookAppointment: %s is a hospital holiday (%s)", date, occasion)
			return &HolidayError{Occasion: occasion}
		}

		// 4.2. Отпуск врача на эту дату
		if reason, onLeave, err := uc.findLeave(txCtx, doctor.Name, date, now); err != nil {
			return err
		} else if onLeave {
			uc.logger.Warn("BookAppointment: doctor=%s is on leave on %s (%s)", doctor.Name, date, reason)
			return &LeaveError{Reason: reason}
		}

		// 4.3. Считаем свободные слоты; занятые строки блокируются FOR UPDATE
		booked, err := uc.bookingRepo.ListByDoctorAndDate(txCtx, doctor.Name, date)
		if err != nil {
			uc.logger.Error("BookAppointment: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		free := freeSlots(slotGrid(doctor, uc.slotMinutes, uc.logger), booked)
		if len(free) == 0 {
			uc.logger.Warn("BookAppointment: no open slots for doctor=%s on %s", doctor.Name, date)
			return ErrNoOpenSlots
		}

		if !containsSlot(free, timeSlot) {
			hint := nextAvailable(free, timeSlot)
			uc.logger.Warn("BookAppointment: slot %s taken for doctor=%s on %s, next=%s", timeSlot, doctor.Name, date, hint)
			return &SlotTakenError{NextAvailable: hint}
		}

		// 4.4. Условная вставка: проверка занятости и запись одним запросом
		created, err := uc.bookingRepo.CreateUnlessTaken(txCtx, &domain.Booking{
			DoctorName: doctor.Name,
			Date:       date,
			Time:       timeSlot,
			Phone:      phone,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return &SlotTakenError{NextAvailable: nextAvailable(free, timeSlot)}
			}
			uc.logger.Error("BookAppointment: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookAppointment: successfully created booking id=%d", result.ID)

	return &Response{
		ID:         result.ID,
		DoctorName: result.DoctorName,
		Date:       result.Date,
		Time:       result.Time,
		Phone:      result.Phone,
		CreatedAt:  result.CreatedAt,
	}, nil
}

// findHoliday ищет праздник больницы на каноничную дату.
// Нечитаемые строки календаря пропускаются.
func (uc *UseCase) findHoliday(ctx context.Context, date string, now time.Time) (string, bool, error) {
	holidays, err := uc.holidayRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("BookAppointment: failed to list holidays: %v", err)
		return "", false, fmt.Errorf("%w: failed to list holidays: %v", ErrInternal, err)
	}

	for _, h := range holidays {
		rowDate, err := normalize.Date(h.Date, now)
		if err != nil {
			uc.logger.Warn("BookAppointment: skipping holiday id=%d with unreadable date %q", h.ID, h.Date)
			continue
		}
		if rowDate == date {
			return h.Occasion, true, nil
		}
	}

	return "", false, nil
}

// findLeave ищет отпуск врача на каноничную дату
func (uc *UseCase) findLeave(ctx context.Context, doctorName, date string, now time.Time) (string, bool, error) {
	leaves, err := uc.leaveRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("BookAppointment: failed to list leaves: %v", err)
		return "", false, fmt.Errorf("%w: failed to list leaves: %v", ErrInternal, err)
	}

	for _, l := range leaves {
		if !strings.EqualFold(strings.TrimSpace(l.DoctorName), strings.TrimSpace(doctorName)) {
			continue
		}
		rowDate, err := normalize.Date(l.Date, now)
		if err != nil {
			uc.logger.Warn("BookAppointment: skipping leave id=%d with unreadable date %q", l.ID, l.Date)
			continue
		}
		if rowDate == date {
			return l.Reason, true, nil
		}
	}

	return "", false, nil
}

// containsSlot проверяет наличие каноничного времени в списке слотов
func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
