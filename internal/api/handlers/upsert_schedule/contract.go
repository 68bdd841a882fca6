package upsert_schedule

import (
	"context"

	"github.com/m04kA/SMC-SalonBookingService/internal/service/schedules/models"
)

type ScheduleService interface {
	Upsert(ctx context.Context, req *models.UpsertRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
