package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("staff not found")

	// ErrServiceNotLinked возвращается, когда сотрудник не оказывает услугу
	ErrServiceNotLinked = errors.New("staff does not provide this service")

	// ErrLinkNotFound возвращается, когда связка не найдена
	ErrLinkNotFound = errors.New("staff service link not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
