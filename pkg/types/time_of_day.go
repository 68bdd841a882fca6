package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesInDay количество минут в сутках
const MinutesInDay = 24 * 60

var (
	// ErrInvalidTimeFormat возвращается, когда строка не в формате HH:MM или HH:MM:SS
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOutOfRange возвращается, когда время выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time of day out of range")
)

// TimeOfDay время суток в минутах от полуночи.
// Строковое представление ("09:30") используется только на границах: БД и HTTP.
// Значение 24:00 (MinutesInDay) допустимо как конец рабочего дня.
type TimeOfDay int

// NewTimeOfDay создает время суток из часов и минут
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// FromTime извлекает время суток из time.Time (секунды отбрасываются)
func FromTime(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute())
}

// ParseTimeOfDay парсит строку "HH:MM" или "HH:MM:SS" (формат Postgres TIME)
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	t := NewTimeOfDay(hour, minute)
	if err := t.Validate(); err != nil {
		return 0, err
	}

	return t, nil
}

// MustParseTimeOfDay парсит строку и паникует при ошибке (для констант и тестов)
func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Hour возвращает часы
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute возвращает минуты
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// Minutes возвращает количество минут от полуночи
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// AddMinutes возвращает время, сдвинутое на указанное количество минут
func (t TimeOfDay) AddMinutes(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// IsBefore проверяет, что t строго раньше other
func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return t < other
}

// IsAfter проверяет, что t строго позже other
func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return t > other
}

// Validate проверяет, что время в пределах [00:00, 24:00]
func (t TimeOfDay) Validate() error {
	if t < 0 || t > MinutesInDay {
		return fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, int(t))
	}
	return nil
}

// OnDate возвращает момент времени на указанную дату
func (t TimeOfDay) OnDate(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, date.Location())
}

// String форматирует время как HH:MM (24-часовой формат, с ведущими нулями)
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalText реализует encoding.TextMarshaler (используется encoding/json)
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler
func (t *TimeOfDay) UnmarshalText(data []byte) error {
	parsed, err := ParseTimeOfDay(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer, в БД пишется строка "HH:MM"
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan реализует sql.Scanner.
// lib/pq отдает колонку TIME как []byte "15:04:05", но поддерживаем и time.Time
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return t.UnmarshalText(v)
	case string:
		return t.UnmarshalText([]byte(v))
	case time.Time:
		*t = FromTime(v)
		return nil
	case nil:
		return fmt.Errorf("%w: NULL", ErrInvalidTimeFormat)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeFormat, src)
	}
}
