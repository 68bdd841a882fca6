package get_business_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/businesshours"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
	msgSalonNotFound  = "салон не найден"
)

type Handler struct {
	service BusinessHoursService
	logger  Logger
}

func NewHandler(service BusinessHoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := handlers.PathUUID(r, "salonId")
	if err != nil {
		h.logger.Warn("GET /salons/{id}/business-hours - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	result, err := h.service.Get(r.Context(), salonID)
	if err != nil {
		if errors.Is(err, businesshours.ErrSalonNotFound) {
			handlers.RespondNotFound(w, msgSalonNotFound)
			return
		}
		h.logger.Error("GET /salons/{id}/business-hours - Failed to get business hours: salon_id=%s, error=%v", salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
