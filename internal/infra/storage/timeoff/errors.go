package timeoff

import "errors"

var (
	// ErrTimeOffNotFound возвращается, когда запись отсутствия не найдена
	ErrTimeOffNotFound = errors.New("timeoff.repository: time off not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("timeoff.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("timeoff.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("timeoff.repository: failed to scan row")
)
