package create_appointment

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("create_appointment: salon not found")

	// ErrStylistNotFound возвращается, когда мастер не найден в салоне
	ErrStylistNotFound = errors.New("create_appointment: stylist not found")

	// ErrStylistInactive возвращается, когда мастер не принимает записи
	ErrStylistInactive = errors.New("create_appointment: stylist is inactive")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrServiceInactive возвращается, когда услуга снята с продажи
	ErrServiceInactive = errors.New("create_appointment: service is inactive")

	// ErrInvalidDate возвращается, когда дата или время записи уже прошли
	ErrInvalidDate = errors.New("create_appointment: appointment time is in the past")

	// ErrSlotNotAvailable возвращается, когда выбранное время занято или вне рабочего окна
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrAccessDenied возвращается, когда запись на другого клиента создает не сотрудник салона
	ErrAccessDenied = errors.New("create_appointment: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
