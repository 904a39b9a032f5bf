package upcoming_days

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/HMS-ChatbotService/internal/domain"
	"github.com/m04kA/HMS-ChatbotService/internal/normalize"
	"github.com/m04kA/HMS-ChatbotService/internal/service/doctors"
)

// UseCase use case расчета ближайших рабочих дней врача.
// Для каждого рабочего дня в пределах горизонта возвращается статус:
// доступен, праздник больницы или отпуск врача.
type UseCase struct {
	doctorResolver DoctorResolver
	holidayRepo    HolidayRepository
	leaveRepo      LeaveRepository
	horizonDays    int
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	doctorResolver DoctorResolver,
	holidayRepo HolidayRepository,
	leaveRepo LeaveRepository,
	horizonDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		doctorResolver: doctorResolver,
		holidayRepo:    holidayRepo,
		leaveRepo:      leaveRepo,
		horizonDays:    horizonDays,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case расчета ближайших рабочих дней
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if strings.TrimSpace(req.DoctorName) == "" {
		return nil, fmt.Errorf("%w: doctor name is required", ErrInvalidInput)
	}

	// 2. Находим врача
	doctor, err := uc.doctorResolver.ResolveByName(ctx, req.DoctorName)
	if err != nil {
		if errors.Is(err, doctors.ErrDoctorNotFound) {
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("UpcomingDays: failed to resolve doctor %q: %v", req.DoctorName, err)
		return nil, fmt.Errorf("%w: failed to resolve doctor: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	// 3. Собираем календари праздников и отпусков врача
	holidays, err := uc.holidayMap(ctx, now)
	if err != nil {
		return nil, err
	}

	leaves, err := uc.leaveMap(ctx, doctor.Name, now)
	if err != nil {
		return nil, err
	}

	// 4. Идем по календарю вперед, оставляя только рабочие дни недели врача.
	// Предохранитель scanned ограничивает проход, если у врача нет
	// распознанных рабочих дней.
	working := doctor.WorkingWeekdays()
	days := make([]domain.DayAvailability, 0, uc.horizonDays)

	for day, scanned := now, 0; len(days) < uc.horizonDays && scanned < domain.ScanCapDays; day, scanned = day.AddDate(0, 0, 1), scanned+1 {
		if !working[day.Weekday()] {
			continue
		}

		date := day.Format(domain.DateFormat)
		availability := domain.DayAvailability{Date: date, Status: domain.DayAvailable}

		if occasion, ok := holidays[date]; ok {
			availability.Status = domain.DayHoliday
			availability.Note = occasion
		} else if reason, ok := leaves[date]; ok {
			availability.Status = domain.DayLeave
			availability.Note = reason
		}

		days = append(days, availability)
	}

	uc.logger.Info("UpcomingDays: doctor=%s days=%d", doctor.Name, len(days))

	return &Response{
		DoctorName: doctor.Name,
		Days:       days,
	}, nil
}

// holidayMap строит отображение каноничной даты в повод праздника.
// Даты в хранилище могут быть в произвольной форме, поэтому каждая
// приводится к каноничной; нечитаемые строки пропускаются.
func (uc *UseCase) holidayMap(ctx context.Context, now time.Time) (map[string]string, error) {
	holidays, err := uc.holidayRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("UpcomingDays: failed to list holidays: %v", err)
		return nil, fmt.Errorf("%w: failed to list holidays: %v", ErrInternal, err)
	}

	result := make(map[string]string, len(holidays))
	for _, h := range holidays {
		date, err := normalize.Date(h.Date, now)
		if err != nil {
			uc.logger.Warn("UpcomingDays: skipping holiday id=%d with unreadable date %q", h.ID, h.Date)
			continue
		}
		result[date] = h.Occasion
	}

	return result, nil
}

// leaveMap строит отображение каноничной даты в причину отпуска
// для конкретного врача
func (uc *UseCase) leaveMap(ctx context.Context, doctorName string, now time.Time) (map[string]string, error) {
	leaves, err := uc.leaveRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("UpcomingDays: failed to list leaves: %v", err)
		return nil, fmt.Errorf("%w: failed to list leaves: %v", ErrInternal, err)
	}

	result := make(map[string]string)
	for _, l := range leaves {
		if !strings.EqualFold(strings.TrimSpace(l.DoctorName), strings.TrimSpace(doctorName)) {
			continue
		}
		date, err := normalize.Date(l.Date, now)
		if err != nil {
			uc.logger.Warn("UpcomingDays: skipping leave id=%d with unreadable date %q", l.ID, l.Date)
			continue
		}
		result[date] = l.Reason
	}

	return result, nil
}
