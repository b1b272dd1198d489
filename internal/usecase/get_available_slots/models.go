package get_available_slots

import (
	"time"
)

// Config параметры генерации слотов
type Config struct {
	HorizonDays     int // максимум дней вперед для бронирования
	LeadTimeMinutes int // минимальное время от "сейчас" до начала слота
}

// Request модель запроса на получение доступных слотов
type Request struct {
	BusinessID int64     // ID бизнеса
	StaffID    int64     // ID сотрудника
	ServiceID  int64     // ID услуги
	Date       time.Time // Дата для генерации слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            string `json:"date"` // YYYY-MM-DD
	BusinessID      int64  `json:"businessId"`
	StaffID         int64  `json:"staffId"`
	ServiceID       int64  `json:"serviceId"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           int64  `json:"price"`
	Slots           []Slot `json:"slots"`
}

// Slot кандидат на бронирование: интервал ровно одной длительности услуги
type Slot struct {
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
}
