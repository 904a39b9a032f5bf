package process_message

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-ChatbotService/internal/api/handlers"
	processMessage "github.com/m04kA/HMS-ChatbotService/internal/usecase/process_message"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgEmptyMessage       = "text is required"
)

type Handler struct {
	useCase ProcessMessageUseCase
	logger  Logger
}

func NewHandler(useCase ProcessMessageUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, processMessage.ErrInvalidInput):
			h.logger.Warn("POST /messages - Empty message from user=%s", req.UserID)
			handlers.RespondBadRequest(w, msgEmptyMessage)

		default:
			h.logger.Error("POST /messages - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
