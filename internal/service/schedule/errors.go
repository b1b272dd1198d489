package schedule

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("staff not found")

	// ErrWorkingHoursNotFound возвращается, когда расписание не найдено
	ErrWorkingHoursNotFound = errors.New("working hours not found")

	// ErrTimeOffNotFound возвращается, когда запись отсутствия не найдена
	ErrTimeOffNotFound = errors.New("time off not found")

	// ErrInvalidWeekday возвращается при weekday вне диапазона [0..6]
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
