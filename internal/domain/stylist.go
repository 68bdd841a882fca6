package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// Stylist мастер салона
type Stylist struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	SalonID        uuid.UUID
	FullName       string
	Specialties    []string
	Bio            *string
	HourlyRate     *float64
	CommissionRate float64
	IsActive       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StylistSchedule рабочее окно мастера на конкретную дату.
// Сужает часы работы салона, но никогда их не расширяет
type StylistSchedule struct {
	ID          uuid.UUID
	StylistID   uuid.UUID
	SalonID     uuid.UUID
	Date        time.Time
	StartTime   types.TimeOfDay
	EndTime     types.TimeOfDay
	IsAvailable bool // false - мастер в этот день не работает
	BreakStart  *types.TimeOfDay
	BreakEnd    *types.TimeOfDay
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window возвращает рабочее окно мастера
func (s *StylistSchedule) Window() types.TimeRange {
	return types.NewTimeRange(s.StartTime, s.EndTime)
}

// Break возвращает перерыв, если заданы оба конца
func (s *StylistSchedule) Break() (types.TimeRange, bool) {
	if s.BreakStart == nil || s.BreakEnd == nil {
		return types.TimeRange{}, false
	}
	return types.NewTimeRange(*s.BreakStart, *s.BreakEnd), true
}
