package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const canonicalDateLayout = "02-01-2006"

// свободные форматы с текстовым месяцем, день впереди
var freeFormDateLayouts = []string{
	"2 January 2006",
	"2 Jan 2006",
	"2 January",
	"2 Jan",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02",
}

// Date приводит гибкий пользовательский ввод даты к каноничной форме
// dd-mm-yyyy. Принимает dd-mm и dd/mm (год — текущий), dd-mm-yyyy и
// dd/mm/yyyy (двузначный год трактуется как 20yy), либо свободную форму
// с приоритетом "день перед месяцем".
func Date(input string, now time.Time) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("%w: empty date", ErrParse)
	}

	// числовая форма: день-месяц[-год]; при неудаче падаем в свободную
	parts := strings.Split(strings.ReplaceAll(s, "/", "-"), "-")
	switch len(parts) {
	case 2:
		day, dayErr := strconv.Atoi(strings.TrimSpace(parts[0]))
		month, monErr := strconv.Atoi(strings.TrimSpace(parts[1]))
		if dayErr == nil && monErr == nil {
			if date, err := buildDate(day, month, now.Year()); err == nil {
				return date, nil
			}
		}
	case 3:
		day, dayErr := strconv.Atoi(strings.TrimSpace(parts[0]))
		month, monErr := strconv.Atoi(strings.TrimSpace(parts[1]))
		year, yearErr := strconv.Atoi(strings.TrimSpace(parts[2]))
		if dayErr == nil && monErr == nil && yearErr == nil {
			if year < 100 {
				year += 2000
			}
			if date, err := buildDate(day, month, year); err == nil {
				return date, nil
			}
		}
	}

	// свободная форма: пробуем текстовые форматы
	for _, layout := range freeFormDateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		year := t.Year()
		if year == 0 {
			year = now.Year()
		}
		return buildDate(t.Day(), int(t.Month()), year)
	}

	return "", fmt.Errorf("%w: date %q", ErrParse, input)
}

// buildDate собирает каноничную дату, отвергая несуществующие комбинации
// (time.Date нормализует переполнение, поэтому сверяем компоненты)
func buildDate(day, month, year int) (string, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", fmt.Errorf("%w: day=%d month=%d", ErrParse, day, month)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return "", fmt.Errorf("%w: day=%d month=%d year=%d", ErrParse, day, month, year)
	}
	return t.Format(canonicalDateLayout), nil
}
