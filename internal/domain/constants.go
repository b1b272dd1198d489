package domain

// DateFormat формат дат в запросах и ответах (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// Ограничения входных данных
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 часов
	MaxCommentLength          = 500
	MaxNameLength             = 255
)
