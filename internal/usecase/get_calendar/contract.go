package get_calendar

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/constraints"
)

// CatalogRepository интерфейс репозитория мастеров и услуг
type CatalogRepository interface {
	GetStylist(ctx context.Context, salonID, stylistID uuid.UUID) (*domain.Stylist, error)
	GetService(ctx context.Context, salonID, serviceID uuid.UUID) (*domain.Service, error)
}

// ConstraintsLoader загружает часы работы, расписание мастера и записи на дату
type ConstraintsLoader interface {
	Load(ctx context.Context, q constraints.Query) (*constraints.Snapshot, error)
}

// SlotsRecorder метрики сгенерированных слотов
type SlotsRecorder interface {
	ObserveSlots(view string, count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
