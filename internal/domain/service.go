package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service услуга салона (стрижка, окрашивание и т.д.)
type Service struct {
	ID              uuid.UUID
	SalonID         uuid.UUID
	Name            string
	Description     *string
	DurationMinutes int
	Price           float64
	Category        string
	Color           string
	IsActive        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
