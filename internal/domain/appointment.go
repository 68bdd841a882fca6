package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "pending"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

// PaymentStatus статус оплаты записи
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentPartial  PaymentStatus = "partial"
	PaymentRefunded PaymentStatus = "refunded"
)

// Appointment запись клиента к мастеру
type Appointment struct {
	ID              uuid.UUID
	SalonID         uuid.UUID
	CustomerID      uuid.UUID
	StylistID       uuid.UUID
	ServiceID       uuid.UUID
	AppointmentDate time.Time
	StartTime       types.TimeOfDay
	EndTime         types.TimeOfDay
	Status          AppointmentStatus

	Notes         *string
	InternalNotes *string
	TotalAmount   float64
	DepositAmount float64
	PaymentStatus PaymentStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval возвращает занимаемый интервал [StartTime, EndTime)
func (a *Appointment) Interval() types.TimeRange {
	return types.NewTimeRange(a.StartTime, a.EndTime)
}

// IsActive true, если запись занимает время мастера
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// IsFinal true, если статус больше нельзя изменить
func (a *Appointment) IsFinal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled || a.Status == StatusNoShow
}

// CanTransitionTo проверяет допустимость перехода статуса
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if a.IsFinal() || a.Status == next {
		return false
	}

	switch next {
	case StatusConfirmed:
		return a.Status == StatusPending
	case StatusInProgress:
		return a.Status == StatusPending || a.Status == StatusConfirmed
	case StatusCompleted:
		return a.Status == StatusInProgress || a.Status == StatusConfirmed
	case StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// ParseAppointmentStatus проверяет строку статуса
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	status := AppointmentStatus(s)
	for _, known := range AllStatuses {
		if status == known {
			return status, true
		}
	}
	return "", false
}

// AppointmentsFilter фильтр выборки записей салона
type AppointmentsFilter struct {
	SalonID         uuid.UUID          // Обязательный параметр
	StylistID       *uuid.UUID         // nil - все мастера
	StartDate       time.Time          // Начало периода (включительно)
	EndDate         time.Time          // Конец периода (включительно)
	Status          *AppointmentStatus // Конкретный статус (опционально)
	IncludeInactive bool               // Включать отмененные и no-show
}

// IsSingleDay true, если фильтр на одну дату
func (f *AppointmentsFilter) IsSingleDay() bool {
	return f.StartDate.Equal(f.EndDate)
}

// ActiveIntervals возвращает интервалы активных записей
func ActiveIntervals(appointments []*Appointment) []types.TimeRange {
	intervals := make([]types.TimeRange, 0, len(appointments))
	for _, apt := range appointments {
		if !apt.IsActive() {
			continue
		}
		intervals = append(intervals, apt.Interval())
	}
	return intervals
}

// StatusUpdate изменение статуса записи
type StatusUpdate struct {
	Status             AppointmentStatus
	InternalNotes      *string // nil - не менять
	CancellationReason *string // учитывается только при отмене
}
