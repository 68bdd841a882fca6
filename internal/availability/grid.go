package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// BuildDayGrid строит сетку календаря на день: ячейка каждые 30 минут рабочего окна.
// Available - ячейка входит в GenerateAvailableTimeSlots и в ней не начинается запись.
// Appointment - активная запись, которая начинается в этой ячейке
func BuildDayGrid(date time.Time, c Constraints, serviceDuration int, appointments []*domain.Appointment) []domain.TimeSlot {
	grid := make([]domain.TimeSlot, 0)

	window, ok := WorkingWindow(date, c)
	if !ok {
		return grid
	}

	available := make(map[types.TimeOfDay]struct{})
	for _, t := range GenerateAvailableTimeSlots(date, c, serviceDuration) {
		available[t] = struct{}{}
	}

	startsAt := make(map[types.TimeOfDay]*domain.Appointment, len(appointments))
	for _, apt := range appointments {
		if !apt.IsActive() {
			continue
		}
		if _, exists := startsAt[apt.StartTime]; !exists {
			startsAt[apt.StartTime] = apt
		}
	}

	for t := window.Start; t < window.End; t = t.AddMinutes(domain.SlotIntervalMinutes) {
		_, free := available[t]
		apt := startsAt[t]
		grid = append(grid, domain.TimeSlot{
			Time:        t,
			Available:   free && apt == nil,
			Appointment: apt,
		})
	}

	return grid
}

// CountAvailable считает свободные ячейки сетки
func CountAvailable(grid []domain.TimeSlot) int {
	count := 0
	for _, cell := range grid {
		if cell.Available {
			count++
		}
	}
	return count
}
