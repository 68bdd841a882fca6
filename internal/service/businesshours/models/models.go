package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// Request модели

// DayHours часы работы одного дня недели
type DayHours struct {
	DayOfWeek int              `json:"dayOfWeek"` // 0 = воскресенье
	OpenTime  *types.TimeOfDay `json:"openTime,omitempty"`
	CloseTime *types.TimeOfDay `json:"closeTime,omitempty"`
	IsClosed  bool             `json:"isClosed"`
}

// UpdateBusinessHoursRequest запрос на замену недельного расписания
type UpdateBusinessHoursRequest struct {
	UserID  uuid.UUID  `json:"-"`
	SalonID uuid.UUID  `json:"-"`
	Days    []DayHours `json:"days"`
}

// ToDomain конвертирует запрос в domain модели
func (r *UpdateBusinessHoursRequest) ToDomain() []domain.BusinessHours {
	hours := make([]domain.BusinessHours, len(r.Days))
	for i, d := range r.Days {
		hours[i] = domain.BusinessHours{
			SalonID:   r.SalonID,
			DayOfWeek: d.DayOfWeek,
			OpenTime:  d.OpenTime,
			CloseTime: d.CloseTime,
			IsClosed:  d.IsClosed,
		}
	}
	return hours
}

// Response модели

// BusinessHoursResponse часы работы салона с текстовым описанием
type BusinessHoursResponse struct {
	SalonID  uuid.UUID  `json:"salonId"`
	Timezone string     `json:"timezone"`
	Days     []DayHours `json:"days"`
	Summary  string     `json:"summary"`
}

// FromDomain конвертирует domain модели в DTO
func FromDomain(salon *domain.Salon, hours []domain.BusinessHours, summary string) *BusinessHoursResponse {
	days := make([]DayHours, len(hours))
	for i, h := range hours {
		days[i] = DayHours{
			DayOfWeek: h.DayOfWeek,
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
			IsClosed:  h.IsClosed,
		}
	}

	return &BusinessHoursResponse{
		SalonID:  salon.ID,
		Timezone: salon.Timezone,
		Days:     days,
		Summary:  summary,
	}
}
