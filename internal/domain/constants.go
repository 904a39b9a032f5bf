package domain

import "github.com/m04kA/HMS-ChatbotService/pkg/types"

// Форматы каноничных представлений даты и времени
const (
	DateFormat = "02-01-2006"      // dd-mm-yyyy
	TimeFormat = types.ClockLayout // hh:mm AM/PM
)

// Параметры расписания по умолчанию
const (
	DefaultSlotMinutes = 20 // длительность одного слота приема
	DefaultHorizonDays = 7  // сколько рабочих дней показывать вперед
	ScanCapDays        = 30 // предохранитель на случай врача без рабочих дней
)

// Часы приема по умолчанию. Применяются, когда расписание врача
// в хранилище не удается распарсить: доступность важнее отказа.
const (
	FallbackStartTime = "09:00 AM"
	FallbackEndTime   = "05:00 PM"
)

// Ограничения диалога
const (
	PhoneDigits    = 10 // длина номера телефона, хранятся последние 10 цифр
	MaxSlotButtons = 6  // сколько слотов предлагать кнопками за раз
)
