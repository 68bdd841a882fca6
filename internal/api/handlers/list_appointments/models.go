package list_appointments

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/appointments/models"
)

// ToServiceRequest собирает запрос сервиса из query параметров.
// to по умолчанию равен from
func ToServiceRequest(r *http.Request, salonID, userID uuid.UUID) (*models.ListRequest, error) {
	query := r.URL.Query()

	from, err := handlers.ParseDate(query.Get("from"))
	if err != nil {
		return nil, err
	}

	to := from
	if raw := query.Get("to"); raw != "" {
		if to, err = handlers.ParseDate(raw); err != nil {
			return nil, err
		}
	}

	stylistID, err := handlers.QueryUUID(r, "stylistId")
	if err != nil {
		return nil, err
	}

	includeInactive, err := handlers.QueryBool(r, "includeInactive")
	if err != nil {
		return nil, err
	}

	req := &models.ListRequest{
		UserID:          userID,
		SalonID:         salonID,
		From:            from,
		To:              to,
		StylistID:       stylistID,
		IncludeInactive: includeInactive,
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	return req, nil
}
