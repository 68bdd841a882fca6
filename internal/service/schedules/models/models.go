package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// UpsertRequest запрос на установку расписания мастера на дату
type UpsertRequest struct {
	UserID      uuid.UUID        `json:"-"`
	SalonID     uuid.UUID        `json:"-"`
	StylistID   uuid.UUID        `json:"-"`
	Date        time.Time        `json:"-"`
	StartTime   types.TimeOfDay  `json:"startTime"`
	EndTime     types.TimeOfDay  `json:"endTime"`
	IsAvailable bool             `json:"isAvailable"`
	BreakStart  *types.TimeOfDay `json:"breakStart,omitempty"`
	BreakEnd    *types.TimeOfDay `json:"breakEnd,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}

// ToDomain конвертирует запрос в domain модель
func (r *UpsertRequest) ToDomain() *domain.StylistSchedule {
	return &domain.StylistSchedule{
		StylistID:   r.StylistID,
		SalonID:     r.SalonID,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		IsAvailable: r.IsAvailable,
		BreakStart:  r.BreakStart,
		BreakEnd:    r.BreakEnd,
		Notes:       r.Notes,
	}
}

// ScheduleResponse ответ с расписанием мастера на дату
type ScheduleResponse struct {
	ID          uuid.UUID        `json:"id"`
	StylistID   uuid.UUID        `json:"stylistId"`
	SalonID     uuid.UUID        `json:"salonId"`
	Date        string           `json:"date"`
	StartTime   types.TimeOfDay  `json:"startTime"`
	EndTime     types.TimeOfDay  `json:"endTime"`
	IsAvailable bool             `json:"isAvailable"`
	BreakStart  *types.TimeOfDay `json:"breakStart,omitempty"`
	BreakEnd    *types.TimeOfDay `json:"breakEnd,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// FromDomain конвертирует domain модель в DTO
func FromDomain(s *domain.StylistSchedule) *ScheduleResponse {
	return &ScheduleResponse{
		ID:          s.ID,
		StylistID:   s.StylistID,
		SalonID:     s.SalonID,
		Date:        s.Date.Format(domain.DateFormat),
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		IsAvailable: s.IsAvailable,
		BreakStart:  s.BreakStart,
		BreakEnd:    s.BreakEnd,
		Notes:       s.Notes,
		UpdatedAt:   s.UpdatedAt,
	}
}
