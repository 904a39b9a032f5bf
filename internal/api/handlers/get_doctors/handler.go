package get_doctors

import (
	"net/http"

	"github.com/m04kA/HMS-ChatbotService/internal/api/handlers"
	"github.com/m04kA/HMS-ChatbotService/internal/domain"
)

type Handler struct {
	service DoctorsService
	logger  Logger
}

func NewHandler(service DoctorsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors?specialization=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		doctors []*domain.Doctor
		err     error
	)

	if specialization := r.URL.Query().Get("specialization"); specialization != "" {
		doctors, err = h.service.BySpecialization(r.Context(), specialization)
	} else {
		doctors, err = h.service.List(r.Context())
	}

	if err != nil {
		h.logger.Error("GET /doctors - Internal error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainDoctors(doctors))
}
