package upsert_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/schedules"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/schedules/models"
)

const (
	msgInvalidSalonID     = "некорректный ID салона"
	msgInvalidStylistID   = "некорректный ID мастера"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректное расписание: время работы или перерыва"
	msgStylistNotFound    = "мастер не найден"
	msgForbidden          = "доступ запрещен"
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

// Handle PUT /api/v1/salons/{salonId}/stylists/{stylistId}/schedules/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := handlers.PathUUID(r, "salonId")
	if err != nil {
		h.logger.Warn("PUT /schedules/{date} - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	stylistID, err := handlers.PathUUID(r, "stylistId")
	if err != nil {
		h.logger.Warn("PUT /schedules/{date} - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	date, err := handlers.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		h.logger.Warn("PUT /schedules/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /schedules/{date} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpsertRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedules/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID
	req.SalonID = salonID
	req.StylistID = stylistID
	req.Date = date

	result, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, schedules.ErrStylistNotFound):
			handlers.RespondNotFound(w, msgStylistNotFound)
		case errors.Is(err, schedules.ErrAccessDenied):
			h.logger.Warn("PUT /schedules/{date} - Access denied: salon_id=%s, user_id=%s", salonID, userID)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("PUT /schedules/{date} - Failed to upsert schedule: stylist_id=%s, error=%v", stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedules/{date} - Schedule saved: stylist_id=%s, date=%s, user_id=%s",
		stylistID, result.Date, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
