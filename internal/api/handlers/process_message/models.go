package process_message

import (
	processMessage "github.com/m04kA/HMS-ChatbotService/internal/usecase/process_message"
)

// MessageRequest HTTP request model
type MessageRequest struct {
	UserID string `json:"userId"`
	Text   string `json:"text"`
}

// MessageResponse HTTP response model
type MessageResponse struct {
	SessionID string   `json:"sessionId"`
	Reply     string   `json:"reply"`
	Buttons   []string `json:"buttons,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MessageRequest) ToUseCaseRequest() *processMessage.Request {
	return &processMessage.Request{
		UserID:  r.UserID,
		Message: r.Text,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *processMessage.Response) *MessageResponse {
	return &MessageResponse{
		SessionID: resp.SessionID,
		Reply:     resp.Reply,
		Buttons:   resp.Options,
	}
}
