package get_available_slots

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonBookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string     `json:"date"`
	SalonID         uuid.UUID  `json:"salonId"`
	StylistID       uuid.UUID  `json:"stylistId"`
	ServiceID       *uuid.UUID `json:"serviceId,omitempty"`
	DurationMinutes int        `json:"durationMinutes"`
	Slots           []string   `json:"slots"`         // ["09:00", "09:30"]
	NextAvailable   *string    `json:"nextAvailable"` // null - свободных слотов нет
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		SalonID:         resp.SalonID,
		StylistID:       resp.StylistID,
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           availability.FormatSlots(resp.Slots),
	}

	if resp.NextAvailable != nil {
		next := resp.NextAvailable.String()
		out.NextAvailable = &next
	}

	return out
}
