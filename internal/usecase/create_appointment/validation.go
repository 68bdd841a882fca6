package create_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == uuid.Nil {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.CustomerID == uuid.Nil {
		return fmt.Errorf("%w: customerID is required", ErrInvalidInput)
	}

	if req.SalonID == uuid.Nil {
		return fmt.Errorf("%w: salonID is required", ErrInvalidInput)
	}

	if req.StylistID == uuid.Nil {
		return fmt.Errorf("%w: stylistID is required", ErrInvalidInput)
	}

	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateNotInPast проверяет, что дата и время записи не прошли (now в часовом поясе салона)
func validateNotInPast(date time.Time, start types.TimeOfDay, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	if dateOnly.Equal(nowOnly) && start.IsBefore(types.FromTime(now)) {
		return ErrInvalidDate
	}

	return nil
}
