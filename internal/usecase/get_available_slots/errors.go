package get_available_slots

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("get_available_slots: business not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден или неактивен
	ErrStaffNotFound = errors.New("get_available_slots: staff not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrServiceNotLinked возвращается, когда сотрудник не оказывает услугу
	ErrServiceNotLinked = errors.New("get_available_slots: staff does not provide this service")

	// ErrDateTooFarInFuture возвращается, когда дата за горизонтом бронирования
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
