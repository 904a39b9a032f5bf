package book_appointment

import (
	"strings"

	"github.com/m04kA/HMS-ChatbotService/internal/domain"
	"github.com/m04kA/HMS-ChatbotService/pkg/types"
)

// slotGrid генерирует все слоты приема врача с фиксированным шагом.
// Нечитаемые часы приема заменяются часами по умолчанию.
func slotGrid(doctor *domain.Doctor, slotMinutes int, log Logger) []string {
	start, err := types.ParseClockTime(strings.TrimSpace(doctor.StartTime))
	if err != nil {
		log.Warn("slotGrid: doctor=%s has unreadable start time %q, using %s",
			doctor.Name, doctor.StartTime, domain.FallbackStartTime)
		start = types.ClockTime(domain.FallbackStartTime)
	}

	end, err := types.ParseClockTime(strings.TrimSpace(doctor.EndTime))
	if err != nil {
		log.Warn("slotGrid: doctor=%s has unreadable end time %q, using %s",
			doctor.Name, doctor.EndTime, domain.FallbackEndTime)
		end = types.ClockTime(domain.FallbackEndTime)
	}

	startMin, _ := start.Minutes()
	endMin, _ := end.Minutes()

	grid := make([]string, 0)
	for m := startMin; m < endMin; m += slotMinutes {
		grid = append(grid, types.FromMinutes(m).String())
	}

	return grid
}

// freeSlots вычитает занятые времена из сетки слотов
func freeSlots(grid []string, booked []*domain.Booking) []string {
	taken := make(map[string]bool, len(booked))
	for _, b := range booked {
		taken[b.Time] = true
	}

	free := make([]string, 0, len(grid))
	for _, slot := range grid {
		if !taken[slot] {
			free = append(free, slot)
		}
	}

	return free
}

// nextAvailable подбирает подсказку для занятого времени: первый
// свободный слот позже запрошенного, иначе первый свободный вообще.
// Возвращает пустую строку, если свободных слотов нет.
func nextAvailable(free []string, requested string) string {
	if len(free) == 0 {
		return ""
	}

	req := types.ClockTime(requested)
	for _, slot := range free {
		if req.Before(types.ClockTime(slot)) {
			return slot
		}
	}

	return free[0]
}
