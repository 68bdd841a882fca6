package businesshours

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Salon, error)
	GetBusinessHours(ctx context.Context, salonID uuid.UUID) ([]domain.BusinessHours, error)
	ReplaceBusinessHours(ctx context.Context, salonID uuid.UUID, hours []domain.BusinessHours) error
}

// StaffChecker проверяет, что пользователь работает в салоне
type StaffChecker interface {
	IsSalonStaff(ctx context.Context, salonID, userID uuid.UUID) (bool, error)
}

// Cache интерфейс кэша часов работы
type Cache interface {
	Get(ctx context.Context, salonID uuid.UUID) ([]domain.BusinessHours, error)
	Version(ctx context.Context, salonID uuid.UUID) (int64, error)
	Set(ctx context.Context, salonID uuid.UUID, version int64, hours []domain.BusinessHours) error
	Invalidate(ctx context.Context, salonID uuid.UUID) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
