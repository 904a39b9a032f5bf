package domain

import (
	"strings"
	"time"
)

// Doctor represents a doctor record from the schedule store
type Doctor struct {
	ID             int64
	Name           string
	Specialization string
	Days           string // рабочие дни через запятую, например "Mon, Wed, Fri"
	StartTime      string // начало приема, например "09:00 AM"
	EndTime        string // конец приема, например "01:00 PM"
}

// weekdayNames сопоставляет человекочитаемые названия дней недели.
// Принимаются полные и сокращенные формы.
var weekdayNames = map[string]time.Weekday{
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tues": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thurs": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
	"sun": time.Sunday, "sunday": time.Sunday,
}

// WorkingWeekdays разбирает строку рабочих дней в множество дней недели.
// Нераспознанные элементы пропускаются: у элемента дополнительно
// пробуются первые три буквы ("Thursday" -> "thu").
func (d *Doctor) WorkingWeekdays() map[time.Weekday]bool {
	result := make(map[time.Weekday]bool)
	for _, part := range strings.Split(d.Days, ",") {
		p := strings.ToLower(strings.TrimSpace(part))
		if p == "" {
			continue
		}
		if wd, ok := weekdayNames[p]; ok {
			result[wd] = true
			continue
		}
		if len(p) >= 3 {
			if wd, ok := weekdayNames[p[:3]]; ok {
				result[wd] = true
			}
		}
	}
	return result
}

// MatchesName возвращает true, если query является подстрокой имени врача
// без учета регистра
func (d *Doctor) MatchesName(query string) bool {
	return strings.Contains(
		strings.ToLower(strings.TrimSpace(d.Name)),
		strings.ToLower(strings.TrimSpace(query)),
	)
}
