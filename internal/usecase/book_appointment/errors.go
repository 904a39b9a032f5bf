package book_appointment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDoctorNotFound возвращается, когда врач не найден
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrHospitalHoliday возвращается, когда на дату приходится праздник больницы
	ErrHospitalHoliday = errors.New("hospital is closed for a holiday")

	// ErrDoctorOnLeave возвращается, когда врач в отпуске на эту дату
	ErrDoctorOnLeave = errors.New("doctor is on leave")

	// ErrSlotTaken возвращается, когда запрошенное время занято
	ErrSlotTaken = errors.New("slot is not available")

	// ErrNoOpenSlots возвращается, когда на дату не осталось свободных слотов
	ErrNoOpenSlots = errors.New("no open slots on this date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

// HolidayError детализирует ErrHospitalHoliday поводом праздника
type HolidayError struct {
	Occasion string
}

func (e *HolidayError) Error() string {
	return fmt.Sprintf("%v: %s", ErrHospitalHoliday, e.Occasion)
}

func (e *HolidayError) Unwrap() error {
	return ErrHospitalHoliday
}

// LeaveError детализирует ErrDoctorOnLeave причиной отпуска
type LeaveError struct {
	Reason string
}

func (e *LeaveError) Error() string {
	return fmt.Sprintf("%v: %s", ErrDoctorOnLeave, e.Reason)
}

func (e *LeaveError) Unwrap() error {
	return ErrDoctorOnLeave
}

// SlotTakenError детализирует ErrSlotTaken подсказкой ближайшего
// свободного слота. NextAvailable пуст, если предложить нечего.
type SlotTakenError struct {
	NextAvailable string
}

func (e *SlotTakenError) Error() string {
	if e.NextAvailable == "" {
		return ErrSlotTaken.Error()
	}
	return fmt.Sprintf("%v, next available: %s", ErrSlotTaken, e.NextAvailable)
}

func (e *SlotTakenError) Unwrap() error {
	return ErrSlotTaken
}
