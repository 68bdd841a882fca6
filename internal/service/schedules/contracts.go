package schedules

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний мастеров
type ScheduleRepository interface {
	GetByStylistAndDate(ctx context.Context, stylistID uuid.UUID, date time.Time) (*domain.StylistSchedule, error)
	Upsert(ctx context.Context, s *domain.StylistSchedule) (*domain.StylistSchedule, error)
}

// CatalogRepository интерфейс репозитория мастеров
type CatalogRepository interface {
	GetStylist(ctx context.Context, salonID, stylistID uuid.UUID) (*domain.Stylist, error)
	IsSalonStaff(ctx context.Context, salonID, userID uuid.UUID) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
