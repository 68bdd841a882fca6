package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidPeriod возвращается, когда конец периода раньше начала или период слишком длинный
	ErrInvalidPeriod = errors.New("invalid period")
)

// Request модели

// ListRequest запрос записей салона за период
type ListRequest struct {
	UserID          uuid.UUID  `json:"userId"`
	SalonID         uuid.UUID  `json:"salonId"`
	From            time.Time  `json:"from"`
	To              time.Time  `json:"to"`
	StylistID       *uuid.UUID `json:"stylistId,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отмененные и no-show
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		SalonID:         r.SalonID,
		StylistID:       r.StylistID,
		StartDate:       r.From,
		EndDate:         r.To,
		IncludeInactive: r.IncludeInactive,
	}

	if r.From.IsZero() || r.To.IsZero() || r.To.Before(r.From) {
		return filter, ErrInvalidPeriod
	}

	if r.To.After(r.From.AddDate(0, 0, domain.MaxListPeriodDays-1)) {
		return filter, fmt.Errorf("%w: at most %d days allowed", ErrInvalidPeriod, domain.MaxListPeriodDays)
	}

	if r.Status != nil {
		status, ok := domain.ParseAppointmentStatus(*r.Status)
		if !ok {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	UserID             uuid.UUID `json:"userId"`
	Status             string    `json:"status"`
	InternalNotes      *string   `json:"internalNotes,omitempty"`
	CancellationReason *string   `json:"cancellationReason,omitempty"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	SalonID         uuid.UUID `json:"salonId"`
	CustomerID      uuid.UUID `json:"customerId"`
	StylistID       uuid.UUID `json:"stylistId"`
	ServiceID       uuid.UUID `json:"serviceId"`
	AppointmentDate string    `json:"appointmentDate"` // "2025-10-15"
	StartTime       string    `json:"startTime"`       // "10:00"
	EndTime         string    `json:"endTime"`
	Status          string    `json:"status"`

	Notes         *string `json:"notes,omitempty"`
	InternalNotes *string `json:"internalNotes,omitempty"`
	TotalAmount   float64 `json:"totalAmount"`
	DepositAmount float64 `json:"depositAmount"`
	PaymentStatus string  `json:"paymentStatus"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO.
// Внутренние заметки видны только сотрудникам салона
func FromDomainAppointment(a *domain.Appointment, staffView bool) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                 a.ID,
		SalonID:            a.SalonID,
		CustomerID:         a.CustomerID,
		StylistID:          a.StylistID,
		ServiceID:          a.ServiceID,
		AppointmentDate:    a.AppointmentDate.Format(domain.DateFormat),
		StartTime:          a.StartTime.String(),
		EndTime:            a.EndTime.String(),
		Status:             string(a.Status),
		Notes:              a.Notes,
		TotalAmount:        a.TotalAmount,
		DepositAmount:      a.DepositAmount,
		PaymentStatus:      string(a.PaymentStatus),
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	if staffView {
		resp.InternalNotes = a.InternalNotes
	}

	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(a, true))
	}

	return resp
}
