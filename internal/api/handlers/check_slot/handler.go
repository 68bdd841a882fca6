package check_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	slotsHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/get_available_slots"
	getAvailableSlots "github.com/m04kA/SMC-SalonBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidTime     = "некорректный формат времени, ожидается HH:MM"
	msgDateInPast      = "дата уже прошла"
	msgSalonNotFound   = "салон не найден"
	msgStylistNotFound = "мастер не найден"
	msgStylistInactive = "мастер не принимает записи"
	msgServiceNotFound = "услуга не найдена"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase CheckSlotUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/stylists/{stylistId}/available-slots/check
// Query params: date, time (required), serviceId, duration (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	base, msg, err := slotsHandler.ParseRequest(r)
	if err != nil {
		h.logger.Warn("GET /available-slots/check - %s: %v", msg, err)
		handlers.RespondBadRequest(w, msg)
		return
	}

	at, err := handlers.QueryTime(r, "time")
	if err != nil {
		h.logger.Warn("GET /available-slots/check - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.CheckSlot(r.Context(), &getAvailableSlots.CheckRequest{Request: *base, Time: at})
	if err != nil {
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
			h.logger.Error("GET /available-slots/check - Failed to check slot: salon_id=%s, stylist_id=%s, error=%v",
				base.SalonID, base.StylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots/check - stylist_id=%s, date=%s, time=%s, available=%t",
		base.StylistID, r.URL.Query().Get("date"), at, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
