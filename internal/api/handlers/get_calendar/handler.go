package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	getCalendar "github.com/m04kA/SMC-SalonBookingService/internal/usecase/get_calendar"
)

const (
	msgInvalidSalonID   = "некорректный ID салона"
	msgInvalidStylistID = "некорректный ID мастера"
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput     = "некорректные параметры календаря, view: day или week"
	msgSalonNotFound    = "салон не найден"
	msgStylistNotFound  = "мастер не найден"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/calendar
// Query params: date (required), view (day|week, по умолчанию day), stylistId, serviceId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := handlers.PathUUID(r, "salonId")
	if err != nil {
		h.logger.Warn("GET /salons/{id}/calendar - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	stylistID, err := handlers.QueryUUID(r, "stylistId")
	if err != nil {
		h.logger.Warn("GET /salons/{id}/calendar - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	serviceID, err := handlers.QueryUUID(r, "serviceId")
	if err != nil {
		h.logger.Warn("GET /salons/{id}/calendar - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := handlers.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /salons/{id}/calendar - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	view := getCalendar.View(r.URL.Query().Get("view"))
	if view == "" {
		view = getCalendar.ViewDay
	}

	req := &getCalendar.Request{
		SalonID:   salonID,
		StylistID: stylistID,
		ServiceID: serviceID,
		View:      view,
		Date:      date,
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, getCalendar.ErrSalonNotFound):
			handlers.RespondNotFound(w, msgSalonNotFound)
		case errors.Is(err, getCalendar.ErrStylistNotFound):
			handlers.RespondNotFound(w, msgStylistNotFound)
		case errors.Is(err, getCalendar.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)
		default:
			h.logger.Error("GET /salons/{id}/calendar - Failed to build calendar: salon_id=%s, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/calendar - Calendar built: salon_id=%s, view=%s, days=%d", salonID, view, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
