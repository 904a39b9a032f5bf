package get_open_slots

import (
	openSlots "github.com/m04kA/HMS-ChatbotService/internal/usecase/open_slots"
)

// OpenSlotsResponse HTTP response model
type OpenSlotsResponse struct {
	DoctorName string   `json:"doctorName"`
	Date       string   `json:"date"`
	Slots      []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *openSlots.Response) *OpenSlotsResponse {
	return &OpenSlotsResponse{
		DoctorName: resp.DoctorName,
		Date:       resp.Date,
		Slots:      resp.Slots,
	}
}
