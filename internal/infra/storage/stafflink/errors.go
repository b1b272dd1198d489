package stafflink

import "errors"

var (
	// ErrLinkNotFound возвращается, когда связка сотрудник-услуга не найдена
	ErrLinkNotFound = errors.New("stafflink.repository: staff service link not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("stafflink.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("stafflink.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("stafflink.repository: failed to scan row")
)
