package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-SalonBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidSalonID   = "некорректный ID салона"
	msgInvalidStylistID = "некорректный ID мастера"
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidDuration  = "некорректная длительность"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast       = "дата уже прошла"
	msgSalonNotFound    = "салон не найден"
	msgStylistNotFound  = "мастер не найден"
	msgStylistInactive  = "мастер не принимает записи"
	msgServiceNotFound  = "услуга не найдена"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/stylists/{stylistId}/available-slots
// Query params: date (required, YYYY-MM-DD), serviceId, duration (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, msg, err := ParseRequest(r)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/stylists/{id}/available-slots - %s: %v", msg, err)
		handlers.RespondBadRequest(w, msg)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.respondUseCaseError(w, err, req)
		return
	}

	h.logger.Info("GET /salons/{id}/stylists/{id}/available-slots - Slots retrieved successfully: salon_id=%s, stylist_id=%s, slots_count=%d",
		req.SalonID, req.StylistID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, err error, req *getAvailableSlots.Request) {
	switch {
	case errors.Is(err, getAvailableSlots.ErrSalonNotFound):
		handlers.RespondNotFound(w, msgSalonNotFound)
	case errors.Is(err, getAvailableSlots.ErrStylistNotFound):
		handlers.RespondNotFound(w, msgStylistNotFound)
	case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
		handlers.RespondNotFound(w, msgServiceNotFound)
	case errors.Is(err, getAvailableSlots.ErrStylistInactive):
		handlers.RespondBadRequest(w, msgStylistInactive)
	case errors.Is(err, getAvailableSlots.ErrInvalidDate):
		handlers.RespondBadRequest(w, msgDateInPast)
	case errors.Is(err, getAvailableSlots.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("GET /salons/{id}/stylists/{id}/available-slots - Failed to get slots: salon_id=%s, stylist_id=%s, error=%v",
			req.SalonID, req.StylistID, err)
		handlers.RespondInternalError(w)
	}
}

// ParseRequest собирает запрос use case из пути и query.
// Возвращает сообщение для клиента вместе с ошибкой разбора
func ParseRequest(r *http.Request) (*getAvailableSlots.Request, string, error) {
	salonID, err := handlers.PathUUID(r, "salonId")
	if err != nil {
		return nil, msgInvalidSalonID, err
	}

	stylistID, err := handlers.PathUUID(r, "stylistId")
	if err != nil {
		return nil, msgInvalidStylistID, err
	}

	serviceID, err := handlers.QueryUUID(r, "serviceId")
	if err != nil {
		return nil, msgInvalidServiceID, err
	}

	duration, err := handlers.QueryInt(r, "duration")
	if err != nil {
		return nil, msgInvalidDuration, err
	}

	date, err := handlers.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		return nil, msgInvalidDate, err
	}

	return &getAvailableSlots.Request{
		SalonID:         salonID,
		StylistID:       stylistID,
		ServiceID:       serviceID,
		DurationMinutes: duration,
		Date:            date,
	}, "", nil
}
