package get_business_hours

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/service/businesshours/models"
)

type BusinessHoursService interface {
	Get(ctx context.Context, salonID uuid.UUID) (*models.BusinessHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
