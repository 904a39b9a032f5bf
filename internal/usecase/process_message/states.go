package process_message

import (
	"context"
	"errors"
	"strings"

	"github.com/m04kA/HMS-ChatbotService/internal/domain"
	"github.com/m04kA/HMS-ChatbotService/internal/normalize"
	"github.com/m04kA/HMS-ChatbotService/internal/usecase/book_appointment"
	"github.com/m04kA/HMS-ChatbotService/internal/usecase/cancel_appointment"
	"github.com/m04kA/HMS-ChatbotService/internal/usecase/open_slots"
	"github.com/m04kA/HMS-ChatbotService/internal/usecase/upcoming_days"
)

// handleGlobal обрабатывает намерения, действующие из любого состояния.
// Порядок фиксирован: приветствие, светские фразы, справочные вопросы,
// ключевое слово отмены. Все остальное уходит автомату состояний.
func (uc *UseCase) handleGlobal(s *domain.Session, intent Intent) (string, []string, bool) {
	switch intent {
	case IntentGreeting:
		s.Reset()
		return msgMenu, menuOptions, true
	case IntentWellbeing:
		return msgWellbeing, menuOptions, true
	case IntentGratitude:
		s.State = domain.StateThankYou
		return msgGratitude, anythingElseOptions, true
	case IntentFarewell:
		s.Reset()
		return msgFarewell, nil, true
	case IntentIdentity:
		return msgIdentity, menuOptions, true
	case IntentHours:
		return msgHours, menuOptions, true
	case IntentLocation:
		return msgLocation, menuOptions, true
	case IntentContact:
		return msgContact, menuOptions, true
	case IntentCancel:
		s.State = domain.StateAwaitingCancelPhone
		return msgAskCancelPhone, nil, true
	default:
		return "", nil, false
	}
}

// handleStart обрабатывает сообщение вне активного сценария
func (uc *UseCase) handleStart(s *domain.Session, intent Intent) (string, []string) {
	switch intent {
	case IntentBook:
		s.State = domain.StateAwaitingPhone
		return msgAskPhone, nil
	default:
		return msgUnknown, menuOptions
	}
}

// handleAwaitingPhone принимает номер телефона и предлагает специализации
func (uc *UseCase) handleAwaitingPhone(ctx context.Context, s *domain.Session, message string) (string, []string) {
	phone, ok := normalize.Phone(message)
	if !ok {
		return msgInvalidPhone, nil
	}

	specs, err := uc.directory.Specializations(ctx)
	if err != nil {
		uc.logger.Error("ProcessMessage: failed to list specializations: %v", err)
		return msgRetryLater, nil
	}
	if len(specs) == 0 {
		s.Reset()
		return msgNoSpecializations, menuOptions
	}

	s.Phone = phone
	s.State = domain.StateAwaitingSpecialization
	return msgAskSpecialization, specs
}

// handleAwaitingSpecialization принимает специализацию и предлагает врачей.
// Вместо специализации абонент может сразу ввести имя врача — тогда
// диалог пропускает выбор врача и переходит к выбору даты.
func (uc *UseCase) handleAwaitingSpecialization(ctx context.Context, s *domain.Session, message string) (string, []string) {
	spec := strings.TrimSpace(message)

	matched, err := uc.directory.BySpecialization(ctx, spec)
	if err != nil {
		uc.logger.Error("ProcessMessage: failed to list doctors for %q: %v", spec, err)
		return msgRetryLater, nil
	}
	if len(matched) == 0 {
		if reply, options, ok := uc.tryDoctorByName(ctx, s, spec); ok {
			return reply, options
		}

		specs, err := uc.directory.Specializations(ctx)
		if err != nil {
			uc.logger.Error("ProcessMessage: failed to list specializations: %v", err)
			return msgRetryLater, nil
		}
		return msgNoDoctorsForSpec, specs
	}

	names := make([]string, 0, len(matched))
	for _, d := range matched {
		names = append(names, d.Name)
	}

	s.Specialization = spec
	s.State = domain.StateAwaitingDoctor
	return msgAskDoctor, names
}

// handleAwaitingDoctor принимает врача и показывает его ближайшие дни
func (uc *UseCase) handleAwaitingDoctor(ctx context.Context, s *domain.Session, message string) (string, []string) {
	if reply, options, ok := uc.tryDoctorByName(ctx, s, message); ok {
		return reply, options
	}
	return msgPickListedDoctor, uc.doctorOptions(ctx, s.Specialization)
}

// tryDoctorByName пытается трактовать ввод как имя врача. При успехе
// запоминает врача, показывает его ближайшие дни и переводит диалог
// к выбору даты. Возвращает ok=false, если врач не найден.
func (uc *UseCase) tryDoctorByName(ctx context.Context, s *domain.Session, name string) (string, []string, bool) {
	resp, err := uc.dayPlanner.Execute(ctx, &upcoming_days.Request{DoctorName: name})
	if err != nil {
		if errors.Is(err, upcoming_days.ErrDoctorNotFound) || errors.Is(err, upcoming_days.ErrInvalidInput) {
			return "", nil, false
		}
		uc.logger.Error("ProcessMessage: upcoming days failed for %q: %v", name, err)
		return msgRetryLater, nil, true
	}

	s.Doctor = resp.DoctorName
	s.State = domain.StateAwaitingDate
	return upcomingDaysReply(resp.DoctorName, resp.Days), nil, true
}

// handleAwaitingDate принимает дату и предлагает свободные слоты
func (uc *UseCase) handleAwaitingDate(ctx context.Context, s *domain.Session, message string) (string, []string) {
	resp, err := uc.slotFinder.Execute(ctx, &open_slots.Request{
		DoctorName: s.Doctor,
		Date:       message,
	})
	if err != nil {
		if errors.Is(err, open_slots.ErrInvalidInput) {
			return msgBadDate, nil
		}
		uc.logger.Error("ProcessMessage: open slots failed for doctor=%s date=%q: %v", s.Doctor, message, err)
		return msgRetryLater, nil
	}

	s.Date = resp.Date
	s.State = domain.StateAwaitingTime

	if len(resp.Slots) == 0 {
		return msgNoSlotsOnDate, nil
	}

	return openSlotsReply(resp.DoctorName, resp.Date), limitOptions(resp.Slots, domain.MaxSlotButtons)
}

// handleAwaitingTime принимает время и создает запись.
// Порядок причин отказа определяет use case записи: праздник, отпуск,
// занятый слот. При любом отказе состояние не меняется — причина
// сообщается абоненту, а сброс диалога остается за ним.
func (uc *UseCase) handleAwaitingTime(ctx context.Context, s *domain.Session, message string) (string, []string) {
	resp, err := uc.booker.Execute(ctx, &book_appointment.Request{
		DoctorName: s.Doctor,
		Date:       s.Date,
		Time:       message,
		Phone:      s.Phone,
	})
	if err != nil {
		var holidayErr *book_appointment.HolidayError
		var leaveErr *book_appointment.LeaveError
		var slotErr *book_appointment.SlotTakenError

		switch {
		case errors.As(err, &holidayErr):
			return holidayReply(s.Date, holidayErr.Occasion), nil
		case errors.As(err, &leaveErr):
			return leaveReply(s.Doctor, s.Date, leaveErr.Reason), nil
		case errors.As(err, &slotErr):
			return slotTakenReply(slotErr.NextAvailable), nil
		case errors.Is(err, book_appointment.ErrNoOpenSlots):
			return msgNoSlotsTryAnother, nil
		case errors.Is(err, book_appointment.ErrInvalidInput):
			return msgBadTime, nil
		default:
			uc.logger.Error("ProcessMessage: booking failed for doctor=%s date=%s: %v", s.Doctor, s.Date, err)
			return msgRetryLater, nil
		}
	}

	s.Time = resp.Time
	s.State = domain.StateDone
	uc.incBooking()
	uc.notifyAsync("confirmation", resp.Phone, resp.DoctorName, resp.Date, resp.Time)

	return confirmationReply(resp.DoctorName, resp.Date, resp.Time), anythingElseOptions
}

// handleDone обрабатывает ответ на вопрос "что-нибудь еще?".
// Непонятный ввод переспрашивается на месте, состояние не теряется.
func (uc *UseCase) handleDone(s *domain.Session, intent Intent) (string, []string) {
	switch intent {
	case IntentYes:
		s.Reset()
		return msgMenuAgain, menuOptions
	case IntentNo:
		s.Reset()
		return msgThankYou, nil
	case IntentBook:
		s.Reset()
		return uc.handleStart(s, IntentBook)
	default:
		return msgDoneReprompt, menuOptions
	}
}

// handleThankYou обрабатывает ответ после благодарности
func (uc *UseCase) handleThankYou(s *domain.Session, intent Intent) (string, []string) {
	switch intent {
	case IntentYes:
		s.Reset()
		return msgMenuAgain, menuOptions
	case IntentNo:
		s.Reset()
		return msgStartOver, nil
	default:
		s.Reset()
		return msgMenu, menuOptions
	}
}

// handleAwaitingCancelPhone принимает номер и показывает брони абонента
func (uc *UseCase) handleAwaitingCancelPhone(ctx context.Context, s *domain.Session, message string) (string, []string) {
	phone, ok := normalize.Phone(message)
	if !ok {
		return msgInvalidPhone, nil
	}

	bookings, err := uc.finder.FindByPhone(ctx, phone)
	if err != nil {
		uc.logger.Error("ProcessMessage: failed to find bookings: %v", err)
		return msgRetryLater, nil
	}
	if len(bookings) == 0 {
		s.Reset()
		return msgNoBookings, menuOptions
	}

	options := make([]string, 0, len(bookings))
	for _, b := range bookings {
		options = append(options, bookingOption(b))
	}

	s.CancelPhone = phone
	s.State = domain.StateAwaitingCancelSelect
	return msgChooseCancel, options
}

// handleAwaitingCancelSelect принимает выбранную бронь и отменяет её.
// Выбор приходит строкой "врач | дата | время" с кнопки.
func (uc *UseCase) handleAwaitingCancelSelect(ctx context.Context, s *domain.Session, message string) (string, []string) {
	parts := strings.Split(message, "|")
	if len(parts) != 3 {
		return msgBadCancelChoice, uc.cancelOptions(ctx, s.CancelPhone)
	}

	resp, err := uc.canceller.Execute(ctx, &cancel_appointment.Request{
		Phone:      s.CancelPhone,
		DoctorName: strings.TrimSpace(parts[0]),
		Date:       strings.TrimSpace(parts[1]),
		Time:       strings.TrimSpace(parts[2]),
	})
	if err != nil {
		switch {
		case errors.Is(err, cancel_appointment.ErrNoMatchingBooking):
			s.Reset()
			return msgCancelGone, menuOptions
		case errors.Is(err, cancel_appointment.ErrInvalidInput):
			return msgBadCancelChoice, uc.cancelOptions(ctx, s.CancelPhone)
		default:
			uc.logger.Error("ProcessMessage: cancellation failed: %v", err)
			s.Reset()
			return msgRetryLater, menuOptions
		}
	}

	s.State = domain.StateDone
	uc.incCancellation()
	uc.notifyAsync("cancellation", resp.Phone, resp.DoctorName, resp.Date, resp.Time)

	return cancellationReply(resp.DoctorName, resp.Date, resp.Time), anythingElseOptions
}

// doctorOptions собирает кнопки врачей выбранной специализации
func (uc *UseCase) doctorOptions(ctx context.Context, specialization string) []string {
	matched, err := uc.directory.BySpecialization(ctx, specialization)
	if err != nil {
		uc.logger.Warn("ProcessMessage: failed to rebuild doctor options: %v", err)
		return nil
	}

	names := make([]string, 0, len(matched))
	for _, d := range matched {
		names = append(names, d.Name)
	}
	return names
}

// cancelOptions собирает кнопки броней абонента заново
func (uc *UseCase) cancelOptions(ctx context.Context, phone string) []string {
	bookings, err := uc.finder.FindByPhone(ctx, phone)
	if err != nil {
		uc.logger.Warn("ProcessMessage: failed to rebuild cancel options: %v", err)
		return nil
	}

	options := make([]string, 0, len(bookings))
	for _, b := range bookings {
		options = append(options, bookingOption(b))
	}
	return options
}
