package get_calendar

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SalonID == uuid.Nil {
		return fmt.Errorf("%w: salonID is required", ErrInvalidInput)
	}

	if req.StylistID != nil && *req.StylistID == uuid.Nil {
		return fmt.Errorf("%w: stylistID must not be empty", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceID must not be empty", ErrInvalidInput)
	}

	if req.View != ViewDay && req.View != ViewWeek {
		return fmt.Errorf("%w: view must be %q or %q", ErrInvalidInput, ViewDay, ViewWeek)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
