package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// Salon салон красоты
type Salon struct {
	ID       uuid.UUID
	Name     string
	Timezone string // IANA, например "Europe/Moscow"
	Currency string
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location возвращает часовой пояс салона. При некорректном значении - UTC
func (s *Salon) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// BusinessHours часы работы салона в конкретный день недели
type BusinessHours struct {
	ID        uuid.UUID
	SalonID   uuid.UUID
	DayOfWeek int              // 0 = воскресенье, 6 = суббота (как time.Weekday)
	OpenTime  *types.TimeOfDay // NULL допустим, тогда салон закрыт
	CloseTime *types.TimeOfDay
	IsClosed  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window возвращает рабочее окно дня.
// false, если салон закрыт: флаг IsClosed или не указано одно из времен
func (b *BusinessHours) Window() (types.TimeRange, bool) {
	if b.IsClosed || b.OpenTime == nil || b.CloseTime == nil {
		return types.TimeRange{}, false
	}
	return types.NewTimeRange(*b.OpenTime, *b.CloseTime), true
}

// HoursForWeekday ищет запись часов работы для дня недели
func HoursForWeekday(hours []BusinessHours, weekday time.Weekday) (*BusinessHours, bool) {
	for i := range hours {
		if hours[i].DayOfWeek == int(weekday) {
			return &hours[i], true
		}
	}
	return nil, false
}
