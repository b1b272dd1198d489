package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeString время в формате "HH:MM" (локальное время дня, без даты)
// Используется для рабочих часов и перерывов
type TimeString string

var (
	// ErrInvalidFormat возвращается при некорректном формате строки времени
	ErrInvalidFormat = errors.New("types: invalid time string format, expected HH:MM")
)

const timeLayout = "15:04"

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(timeLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return TimeString(s), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат строки времени
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return nil
}

// Minutes возвращает количество минут с полуночи
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает новый TimeString, сдвинутый на m минут вперед
// Переход через полночь не поддерживается - возвращает ошибку
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total += m
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("types: time %s + %d minutes is out of day bounds", t, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// OnDate совмещает время дня с датой в указанной таймзоне
func (t TimeString) OnDate(date time.Time, loc *time.Location) (time.Time, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, loc), nil
}
