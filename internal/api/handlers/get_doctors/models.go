package get_doctors

import "github.com/m04kA/HMS-ChatbotService/internal/domain"

// DoctorResponse HTTP response model
type DoctorResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Days           string `json:"days"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
}

// DoctorListResponse HTTP response model списка врачей
type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
}

// FromDomainDoctors конвертирует доменные модели в HTTP response
func FromDomainDoctors(doctors []*domain.Doctor) *DoctorListResponse {
	result := make([]DoctorResponse, len(doctors))
	for i, d := range doctors {
		result[i] = DoctorResponse{
			ID:             d.ID,
			Name:           d.Name,
			Specialization: d.Specialization,
			Days:           d.Days,
			StartTime:      d.StartTime,
			EndTime:        d.EndTime,
		}
	}
	return &DoctorListResponse{Doctors: result}
}
