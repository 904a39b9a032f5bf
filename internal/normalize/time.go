package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// timePattern принимает "10", "10am", "10:30", "10:30 PM" и промежуточные формы
var timePattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(AM|PM)?$`)

// Time приводит гибкий пользовательский ввод времени к каноничной форме
// "hh:mm AM/PM". Для голого часа без маркера: 0 -> 12 AM, 1-11 -> AM,
// >=12 (по модулю 24) -> PM с вычитанием 12 при значении больше 12.
func Time(input string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(input))
	s = strings.ReplaceAll(s, ".", "")

	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("%w: time %q", ErrParse, input)
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if minute > 59 {
		return "", fmt.Errorf("%w: time %q", ErrParse, input)
	}

	meridiem := m[3]
	if meridiem == "" {
		// маркер не указан — выводим его из значения часа
		hour %= 24
		switch {
		case hour == 0:
			hour = 12
			meridiem = "AM"
		case hour < 12:
			meridiem = "AM"
		case hour == 12:
			meridiem = "PM"
		default:
			hour -= 12
			meridiem = "PM"
		}
	} else if hour < 1 || hour > 12 {
		return "", fmt.Errorf("%w: time %q", ErrParse, input)
	}

	return fmt.Sprintf("%02d:%02d %s", hour, minute, meridiem), nil
}

// Phone выделяет из ввода цифры номера телефона.
// Возвращает последние 10 цифр и true, если цифр достаточно.
func Phone(input string) (string, bool) {
	var digits strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) < 10 {
		return "", false
	}
	return d[len(d)-10:], true
}
