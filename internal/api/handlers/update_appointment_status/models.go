package update_appointment_status

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/service/appointments/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status             string  `json:"status"`
	InternalNotes      *string `json:"internalNotes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(userID uuid.UUID) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID:             userID,
		Status:             r.Status,
		InternalNotes:      r.InternalNotes,
		CancellationReason: r.CancellationReason,
	}
}
