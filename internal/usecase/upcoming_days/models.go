package upcoming_days

import "github.com/m04kA/HMS-ChatbotService/internal/domain"

// Request модель запроса ближайших рабочих дней врача
type Request struct {
	DoctorName string // имя врача или его часть
}

// Response модель ответа со статусами ближайших рабочих дней
type Response struct {
	DoctorName string // полное имя найденного врача
	Days       []domain.DayAvailability
}
