// Package availability вычисляет свободные для записи слоты.
// Все функции чистые: не выполняют I/O и не хранят состояние, поэтому безопасны для параллельного вызова.
package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// StylistWindow рабочее окно мастера на дату
type StylistWindow struct {
	Working types.TimeRange
	Break   *types.TimeRange
}

// Constraints входные данные расчета.
// Записи и расписание мастера должны быть уже отфильтрованы по дате и мастеру
type Constraints struct {
	BusinessHours        []domain.BusinessHours
	StylistSchedule      *StylistWindow
	ExistingAppointments []types.TimeRange
}

// WorkingWindow возвращает рабочее окно на дату: часы салона, суженные окном мастера.
// false, если салон в этот день закрыт
func WorkingWindow(date time.Time, c Constraints) (types.TimeRange, bool) {
	hours, ok := domain.HoursForWeekday(c.BusinessHours, date.Weekday())
	if !ok {
		return types.TimeRange{}, false
	}

	window, ok := hours.Window()
	if !ok {
		return types.TimeRange{}, false
	}

	if c.StylistSchedule != nil {
		window = window.Intersect(c.StylistSchedule.Working)
	}

	return window, true
}

// GenerateAvailableTimeSlots возвращает упорядоченные времена начала, на которые можно записаться.
// serviceDuration <= 0 трактуется как длительность по умолчанию (60 минут).
// Отсутствие слотов - это пустой срез, а не ошибка
func GenerateAvailableTimeSlots(date time.Time, c Constraints, serviceDuration int) []types.TimeOfDay {
	slots := make([]types.TimeOfDay, 0)

	window, ok := WorkingWindow(date, c)
	if !ok {
		return slots
	}

	duration := resolveDuration(serviceDuration)

	for t := window.Start; t < window.End; t = t.AddMinutes(domain.SlotIntervalMinutes) {
		candidate := types.NewTimeRange(t, t.AddMinutes(duration))

		// Дальше окно только сужается
		if candidate.End > window.End {
			break
		}

		if conflicts(candidate, c) {
			continue
		}

		slots = append(slots, t)
	}

	return slots
}

// IsTimeSlotAvailable true, если slot входит в результат GenerateAvailableTimeSlots
func IsTimeSlotAvailable(date time.Time, slot types.TimeOfDay, c Constraints, serviceDuration int) bool {
	for _, t := range GenerateAvailableTimeSlots(date, c, serviceDuration) {
		if t == slot {
			return true
		}
	}
	return false
}

// NextAvailableSlot возвращает первый свободный слот дня
func NextAvailableSlot(date time.Time, c Constraints, serviceDuration int) (types.TimeOfDay, bool) {
	slots := GenerateAvailableTimeSlots(date, c, serviceDuration)
	if len(slots) == 0 {
		return 0, false
	}
	return slots[0], true
}

// FormatSlots переводит слоты в строки HH:MM
func FormatSlots(slots []types.TimeOfDay) []string {
	result := make([]string, len(slots))
	for i, t := range slots {
		result[i] = t.String()
	}
	return result
}

func conflicts(candidate types.TimeRange, c Constraints) bool {
	for _, apt := range c.ExistingAppointments {
		if candidate.Overlaps(apt) {
			return true
		}
	}

	if c.StylistSchedule != nil && c.StylistSchedule.Break != nil {
		if candidate.Overlaps(*c.StylistSchedule.Break) {
			return true
		}
	}

	return false
}

func resolveDuration(serviceDuration int) int {
	if serviceDuration <= 0 {
		return domain.DefaultServiceDurationMinutes
	}
	return serviceDuration
}
