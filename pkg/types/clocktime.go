package types

import (
	"errors"
	"fmt"
	"time"
)

// ClockLayout каноничный 12-часовой формат времени с маркером AM/PM
const ClockLayout = "03:04 PM"

const minutesPerDay = 24 * 60

// ErrInvalidClockTime возвращается при некорректном формате времени
var ErrInvalidClockTime = errors.New("types: invalid clock time format")

// ClockTime каноничное время суток в виде строки "hh:mm AM/PM".
// Используется для всех сравнений времени в системе.
type ClockTime string

// NewClockTime создает ClockTime из time.Time
func NewClockTime(t time.Time) ClockTime {
	return ClockTime(t.Format(ClockLayout))
}

// ParseClockTime парсит строку в каноничном формате "hh:mm AM/PM"
func ParseClockTime(s string) (ClockTime, error) {
	if _, err := time.Parse(ClockLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	return ClockTime(s), nil
}

// FromMinutes создает ClockTime из количества минут с полуночи.
// Значения вне суток нормализуются по модулю 24 часов.
func FromMinutes(m int) ClockTime {
	m = ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
	t := time.Date(0, time.January, 1, m/60, m%60, 0, 0, time.UTC)
	return ClockTime(t.Format(ClockLayout))
}

// Validate проверяет, что значение соответствует каноничному формату
func (c ClockTime) Validate() error {
	_, err := ParseClockTime(string(c))
	return err
}

// Minutes возвращает количество минут с полуночи
func (c ClockTime) Minutes() (int, error) {
	t, err := time.Parse(ClockLayout, string(c))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, string(c))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на m минут вперед
func (c ClockTime) AddMinutes(m int) (ClockTime, error) {
	cur, err := c.Minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(cur + m), nil
}

// Before возвращает true, если время строго раньше other.
// Некорректные значения считаются равными (сравнение не определено).
func (c ClockTime) Before(other ClockTime) bool {
	a, err := c.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// String возвращает строковое представление времени
func (c ClockTime) String() string {
	return string(c)
}

// IsZero возвращает true для пустого значения
func (c ClockTime) IsZero() bool {
	return c == ""
}
