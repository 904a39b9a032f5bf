package get_upcoming_days

import (
	upcomingDays "github.com/m04kA/HMS-ChatbotService/internal/usecase/upcoming_days"
)

// DayResponse HTTP response model статуса одного дня
type DayResponse struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

// UpcomingDaysResponse HTTP response model
type UpcomingDaysResponse struct {
	DoctorName string        `json:"doctorName"`
	Days       []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *upcomingDays.Response) *UpcomingDaysResponse {
	days := make([]DayResponse, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = DayResponse{
			Date:   d.Date,
			Status: string(d.Status),
			Note:   d.Note,
		}
	}
	return &UpcomingDaysResponse{
		DoctorName: resp.DoctorName,
		Days:       days,
	}
}
