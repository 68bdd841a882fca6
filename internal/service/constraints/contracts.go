package constraints

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Salon, error)
}

// HoursProvider источник часов работы (сервис с кэшем)
type HoursProvider interface {
	GetHours(ctx context.Context, salonID uuid.UUID) ([]domain.BusinessHours, error)
}

// ScheduleRepository интерфейс репозитория расписаний мастеров
type ScheduleRepository interface {
	GetByStylistAndDate(ctx context.Context, stylistID uuid.UUID, date time.Time) (*domain.StylistSchedule, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
