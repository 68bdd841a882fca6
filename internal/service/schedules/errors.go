package schedules

import "errors"

var (
	// ErrStylistNotFound возвращается, когда мастер не найден в салоне
	ErrStylistNotFound = errors.New("stylist not found")

	// ErrScheduleNotFound возвращается, когда расписание на дату не задано
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
