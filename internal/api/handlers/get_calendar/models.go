package get_calendar

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	getCalendar "github.com/m04kA/SMC-SalonBookingService/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	SalonID         uuid.UUID     `json:"salonId"`
	StylistID       *uuid.UUID    `json:"stylistId,omitempty"`
	View            string        `json:"view"`
	DurationMinutes int           `json:"durationMinutes"`
	Days            []CalendarDay `json:"days"`
}

// CalendarDay сетка одного дня
type CalendarDay struct {
	Date           string         `json:"date"`
	IsOpen         bool           `json:"isOpen"`
	AvailableCount int            `json:"availableCount"`
	Slots          []CalendarSlot `json:"slots"`
}

// CalendarSlot ячейка календаря
type CalendarSlot struct {
	Time        string           `json:"time"`
	Available   bool             `json:"available"`
	Appointment *SlotAppointment `json:"appointment,omitempty"`
}

// SlotAppointment запись, которая начинается в ячейке
type SlotAppointment struct {
	ID        uuid.UUID `json:"id"`
	StylistID uuid.UUID `json:"stylistId"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Status    string    `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]CalendarDay, len(resp.Days))
	for i, d := range resp.Days {
		slots := make([]CalendarSlot, len(d.Slots))
		for j, s := range d.Slots {
			slots[j] = CalendarSlot{
				Time:        s.Time.String(),
				Available:   s.Available,
				Appointment: fromAppointment(s.Appointment),
			}
		}
		days[i] = CalendarDay{
			Date:           d.Date.Format(domain.DateFormat),
			IsOpen:         d.IsOpen,
			AvailableCount: d.AvailableCount,
			Slots:          slots,
		}
	}

	return &CalendarResponse{
		SalonID:         resp.SalonID,
		StylistID:       resp.StylistID,
		View:            string(resp.View),
		DurationMinutes: resp.DurationMinutes,
		Days:            days,
	}
}

func fromAppointment(a *domain.Appointment) *SlotAppointment {
	if a == nil {
		return nil
	}
	return &SlotAppointment{
		ID:        a.ID,
		StylistID: a.StylistID,
		StartTime: a.StartTime.String(),
		EndTime:   a.EndTime.String(),
		Status:    string(a.Status),
	}
}
