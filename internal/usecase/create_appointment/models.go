package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID     uuid.UUID       // ID автора записи (из заголовка авторизации)
	CustomerID uuid.UUID       // ID клиента; отличается от UserID, когда записывает сотрудник салона
	SalonID    uuid.UUID       // ID салона
	StylistID  uuid.UUID       // ID мастера
	ServiceID  uuid.UUID       // ID услуги
	Date       time.Time       // Дата записи (без времени)
	StartTime  types.TimeOfDay // Время начала
	Notes      *string         // Пожелания клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              uuid.UUID
	SalonID         uuid.UUID
	CustomerID      uuid.UUID
	StylistID       uuid.UUID
	ServiceID       uuid.UUID
	AppointmentDate time.Time
	StartTime       types.TimeOfDay
	EndTime         types.TimeOfDay
	DurationMinutes int
	Status          string
	PaymentStatus   string

	// Денормализованные данные
	ServiceName string
	TotalAmount float64
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
