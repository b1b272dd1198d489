package create_booking

import (
	"time"
)

// Config параметры создания бронирования
type Config struct {
	HoldTTLMinutes  int // время жизни hold до подтверждения
	HorizonDays     int // максимум дней вперед для бронирования
	LeadTimeMinutes int // минимальное время от "сейчас" до начала брони
}

// Request модель запроса на создание бронирования
// Клиент идентифицируется телефоном: существующий клиент бизнеса
// переиспользуется, новый заводится автоматически
type Request struct {
	BusinessID int64     // ID бизнеса
	StaffID    int64     // ID сотрудника
	ServiceID  int64     // ID услуги
	StartAt    time.Time // Начало брони

	CustomerName  string  // Имя клиента
	CustomerPhone string  // Телефон клиента
	CustomerEmail *string // Email клиента (опционально)
	Comment       *string // Комментарий к брони (опционально)

	// Сразу создать confirmed, минуя hold (например, бронь с ресепшена)
	ConfirmImmediately bool
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64      `json:"id"`
	BusinessID      int64      `json:"businessId"`
	StaffID         int64      `json:"staffId"`
	StaffServiceID  int64      `json:"staffServiceId"`
	CustomerID      int64      `json:"customerId"`
	StartAt         time.Time  `json:"startAt"`
	EndAt           time.Time  `json:"endAt"`
	Price           int64      `json:"price"`
	DurationMinutes int        `json:"durationMinutes"`
	Status          string     `json:"status"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
	CustomerName    string     `json:"customerName"`
	Comment         *string    `json:"comment,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}
