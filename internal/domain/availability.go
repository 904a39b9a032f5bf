package domain

// DayStatus статус дня в списке ближайших рабочих дней врача
type DayStatus string

const (
	DayAvailable DayStatus = "Available"
	DayHoliday   DayStatus = "Holiday"
	DayLeave     DayStatus = "Leave"
)

// DayAvailability один день из горизонта доступности врача
type DayAvailability struct {
	Date   string    // каноничная дата dd-mm-yyyy
	Status DayStatus
	Note   string // название праздника или причина отпуска
}
