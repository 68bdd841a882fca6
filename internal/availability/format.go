package availability

import (
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// FormatBusinessHours форматирует недельное расписание салона, по строке на день:
// "Monday: 09:00 - 18:00" или "Sunday: Closed"
func FormatBusinessHours(hours []domain.BusinessHours) string {
	sorted := make([]domain.BusinessHours, len(hours))
	copy(sorted, hours)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DayOfWeek < sorted[j].DayOfWeek
	})

	lines := make([]string, 0, len(sorted))
	for i := range sorted {
		lines = append(lines, formatDay(&sorted[i]))
	}

	return strings.Join(lines, "\n")
}

func formatDay(h *domain.BusinessHours) string {
	name := dayName(h.DayOfWeek)

	window, open := h.Window()
	if !open {
		return fmt.Sprintf("%s: Closed", name)
	}

	return fmt.Sprintf("%s: %s - %s", name, window.Start, window.End)
}

func dayName(day int) string {
	if day < 0 || day >= domain.DaysInWeek {
		return fmt.Sprintf("Day %d", day)
	}
	return domain.WeekdayNames[day]
}
