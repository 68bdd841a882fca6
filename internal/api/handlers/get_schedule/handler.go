package get_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/schedules"
)

const (
	msgInvalidSalonID   = "некорректный ID салона"
	msgInvalidStylistID = "некорректный ID мастера"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgStylistNotFound  = "мастер не найден"
	msgScheduleNotFound = "расписание на дату не задано"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/stylists/{stylistId}/schedules/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := handlers.PathUUID(r, "salonId")
	if err != nil {
		h.logger.Warn("GET /schedules/{date} - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	stylistID, err := handlers.PathUUID(r, "stylistId")
	if err != nil {
		h.logger.Warn("GET /schedules/{date} - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	date, err := handlers.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		h.logger.Warn("GET /schedules/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Get(r.Context(), salonID, stylistID, date)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrStylistNotFound):
			handlers.RespondNotFound(w, msgStylistNotFound)
		case errors.Is(err, schedules.ErrScheduleNotFound):
			handlers.RespondNotFound(w, msgScheduleNotFound)
		default:
			h.logger.Error("GET /schedules/{date} - Failed to get schedule: stylist_id=%s, error=%v", stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
