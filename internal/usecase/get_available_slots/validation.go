package get_available_slots

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SalonID == uuid.Nil {
		return fmt.Errorf("%w: salonID is required", ErrInvalidInput)
	}

	if req.StylistID == uuid.Nil {
		return fmt.Errorf("%w: stylistID is required", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceID must not be empty", ErrInvalidInput)
	}

	if req.DurationMinutes < 0 || req.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between 0 and %d minutes", ErrInvalidInput, domain.MaxServiceDurationMinutes)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня (в часовом поясе now)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}

// isSameDay проверяет, что две даты относятся к одному календарному дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
