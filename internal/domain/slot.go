package domain

import "github.com/m04kA/SMC-SalonBookingService/pkg/types"

// TimeSlot ячейка календаря.
// Appointment заполняется только при отображении календаря, генерация слотов его не использует
type TimeSlot struct {
	Time        types.TimeOfDay
	Available   bool
	Appointment *Appointment
}

// IsBooked true, если на это время начинается запись
func (s *TimeSlot) IsBooked() bool {
	return s.Appointment != nil
}
