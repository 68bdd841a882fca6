package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/constraints"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error)
}

// CatalogRepository интерфейс репозитория мастеров и услуг
type CatalogRepository interface {
	GetStylist(ctx context.Context, salonID, stylistID uuid.UUID) (*domain.Stylist, error)
	GetService(ctx context.Context, salonID, serviceID uuid.UUID) (*domain.Service, error)
}

// StaffChecker проверяет, что пользователь работает в салоне
type StaffChecker interface {
	IsSalonStaff(ctx context.Context, salonID, userID uuid.UUID) (bool, error)
}

// ConstraintsLoader загружает часы работы, расписание мастера и записи на дату
type ConstraintsLoader interface {
	Load(ctx context.Context, q constraints.Query) (*constraints.Snapshot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
