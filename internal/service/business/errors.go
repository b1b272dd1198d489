package business

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business not found")

	// ErrAccessDenied возвращается, когда пользователь не состоит в бизнесе
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidTimezone возвращается при неизвестном имени таймзоны
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
