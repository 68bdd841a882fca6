package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	createAppointment "github.com/m04kA/SMC-SalonBookingService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CustomerID      *uuid.UUID `json:"customerId,omitempty"` // только для сотрудников салона
	SalonID         uuid.UUID  `json:"salonId"`
	StylistID       uuid.UUID  `json:"stylistId"`
	ServiceID       uuid.UUID  `json:"serviceId"`
	AppointmentDate string     `json:"appointmentDate"` // "2025-10-15"
	StartTime       string     `json:"startTime"`       // "10:00"
	Notes           *string    `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	SalonID         uuid.UUID `json:"salonId"`
	CustomerID      uuid.UUID `json:"customerId"`
	StylistID       uuid.UUID `json:"stylistId"`
	ServiceID       uuid.UUID `json:"serviceId"`
	AppointmentDate string    `json:"appointmentDate"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"paymentStatus"`
	ServiceName     string    `json:"serviceName"`
	TotalAmount     float64   `json:"totalAmount"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       string    `json:"createdAt"`
	UpdatedAt       string    `json:"updatedAt"`
}

// parseError ошибка разбора с сообщением для клиента
type parseError struct {
	msg string
	err error
}

func (e *parseError) Error() string { return e.err.Error() }
func (e *parseError) Unwrap() error { return e.err }

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Без customerId клиентом считается сам пользователь
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID uuid.UUID) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, &parseError{msg: msgInvalidDate, err: err}
	}

	startTime, err := types.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return nil, &parseError{msg: msgInvalidTime, err: err}
	}

	customerID := userID
	if r.CustomerID != nil {
		customerID = *r.CustomerID
	}

	return &createAppointment.Request{
		UserID:     userID,
		CustomerID: customerID,
		SalonID:    r.SalonID,
		StylistID:  r.StylistID,
		ServiceID:  r.ServiceID,
		Date:       date,
		StartTime:  startTime,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		SalonID:         resp.SalonID,
		CustomerID:      resp.CustomerID,
		StylistID:       resp.StylistID,
		ServiceID:       resp.ServiceID,
		AppointmentDate: resp.AppointmentDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		PaymentStatus:   resp.PaymentStatus,
		ServiceName:     resp.ServiceName,
		TotalAmount:     resp.TotalAmount,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
