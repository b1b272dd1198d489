package create_booking

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("create_booking: business not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден или неактивен
	ErrStaffNotFound = errors.New("create_booking: staff not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceNotLinked возвращается, когда сотрудник не оказывает услугу
	ErrServiceNotLinked = errors.New("create_booking: staff does not provide this service")

	// ErrOutsideWorkingHours возвращается, когда интервал брони не помещается
	// в рабочие часы сотрудника (или попадает на перерыв)
	ErrOutsideWorkingHours = errors.New("create_booking: slot is outside working hours")

	// ErrSlotConflict возвращается, когда интервал пересекается с блокирующей
	// бронью или отсутствием сотрудника
	ErrSlotConflict = errors.New("create_booking: slot conflicts with an existing booking")

	// ErrTooLateToBook возвращается при нарушении минимального lead time
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrDateTooFarInFuture возвращается, когда дата за горизонтом бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
