package customer

import (
	"github.com/avlebedev/SLB-BookingEngine/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
