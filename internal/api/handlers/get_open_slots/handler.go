package get_open_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-ChatbotService/internal/api/handlers"
	openSlots "github.com/m04kA/HMS-ChatbotService/internal/usecase/open_slots"
)

const (
	msgDateRequired   = "date query parameter is required"
	msgInvalidInput   = "invalid doctor name or date"
	msgDoctorNotFound = "doctor not found"
)

type Handler struct {
	useCase OpenSlotsUseCase
	logger  Logger
}

func NewHandler(useCase OpenSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorName}/slots?date=15-04-2026
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorName := mux.Vars(r)["doctorName"]

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /doctors/{doctorName}/slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &openSlots.Request{
		DoctorName: doctorName,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, openSlots.ErrInvalidInput):
			h.logger.Warn("GET /doctors/{doctorName}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, openSlots.ErrDoctorNotFound):
			h.logger.Warn("GET /doctors/{doctorName}/slots - Doctor not found: %s", doctorName)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		default:
			h.logger.Error("GET /doctors/{doctorName}/slots - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
