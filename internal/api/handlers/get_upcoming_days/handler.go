package get_upcoming_days

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-ChatbotService/internal/api/handlers"
	upcomingDays "github.com/m04kA/HMS-ChatbotService/internal/usecase/upcoming_days"
)

const (
	msgDoctorNameRequired = "doctor name is required"
	msgDoctorNotFound     = "doctor not found"
)

type Handler struct {
	useCase UpcomingDaysUseCase
	logger  Logger
}

func NewHandler(useCase UpcomingDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorName}/upcoming-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorName := mux.Vars(r)["doctorName"]

	result, err := h.useCase.Execute(r.Context(), &upcomingDays.Request{
		DoctorName: doctorName,
	})
	if err != nil {
		switch {
		case errors.Is(err, upcomingDays.ErrInvalidInput):
			h.logger.Warn("GET /doctors/{doctorName}/upcoming-days - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgDoctorNameRequired)

		case errors.Is(err, upcomingDays.ErrDoctorNotFound):
			h.logger.Warn("GET /doctors/{doctorName}/upcoming-days - Doctor not found: %s", doctorName)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		default:
			h.logger.Error("GET /doctors/{doctorName}/upcoming-days - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
