package update_business_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/businesshours"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/businesshours/models"
)

const (
	msgInvalidSalonID     = "некорректный ID салона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные часы работы"
	msgSalonNotFound      = "салон не найден"
	msgForbidden          = "доступ запрещен"
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

// Handle PUT /api/v1/salons/{salonId}/business-hours
// Заменяет недельное расписание салона целиком
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := handlers.PathUUID(r, "salonId")
	if err != nil {
		h.logger.Warn("PUT /salons/{id}/business-hours - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /salons/{id}/business-hours - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateBusinessHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /salons/{id}/business-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID
	req.SalonID = salonID

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, businesshours.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, businesshours.ErrSalonNotFound):
			handlers.RespondNotFound(w, msgSalonNotFound)
		case errors.Is(err, businesshours.ErrAccessDenied):
			h.logger.Warn("PUT /salons/{id}/business-hours - Access denied: salon_id=%s, user_id=%s", salonID, userID)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("PUT /salons/{id}/business-hours - Failed to update business hours: salon_id=%s, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /salons/{id}/business-hours - Business hours updated: salon_id=%s, user_id=%s", salonID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
