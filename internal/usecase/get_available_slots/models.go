package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	SalonID         uuid.UUID
	StylistID       uuid.UUID
	ServiceID       *uuid.UUID // если указана, длительность берется из услуги
	DurationMinutes int        // 0 - длительность по умолчанию из конфигурации
	Date            time.Time  // Дата без времени
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time
	SalonID         uuid.UUID
	StylistID       uuid.UUID
	ServiceID       *uuid.UUID
	DurationMinutes int
	Slots           []types.TimeOfDay
	NextAvailable   *types.TimeOfDay // nil - свободных слотов нет
}

// CheckRequest модель запроса на проверку конкретного времени
type CheckRequest struct {
	Request
	Time types.TimeOfDay
}

// CheckResponse результат проверки времени
type CheckResponse struct {
	Date            time.Time
	Time            types.TimeOfDay
	DurationMinutes int
	Available       bool
}
