package get_calendar

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// View вид календаря
type View string

const (
	ViewDay  View = "day"
	ViewWeek View = "week"
)

// Request модель запроса календаря
type Request struct {
	SalonID   uuid.UUID
	StylistID *uuid.UUID // nil - все мастера, доступность только по часам работы
	ServiceID *uuid.UUID // nil - длительность по умолчанию
	View      View
	Date      time.Time // для недели - первый день
}

// Response модель ответа календаря
type Response struct {
	SalonID         uuid.UUID
	StylistID       *uuid.UUID
	View            View
	DurationMinutes int
	Days            []Day
}

// Day сетка одного дня
type Day struct {
	Date           time.Time
	IsOpen         bool
	Slots          []domain.TimeSlot
	AvailableCount int
}
