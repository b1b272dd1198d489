package models

import (
	"time"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
	"github.com/avlebedev/SLB-BookingEngine/pkg/types"
)

// Request модели

// UpsertWorkingHoursRequest запрос на установку рабочих часов
// на день недели (0 = понедельник .. 6 = воскресенье)
type UpsertWorkingHoursRequest struct {
	BusinessID int64   `json:"businessId"`
	StaffID    int64   `json:"staffId"`
	Weekday    int     `json:"weekday"`
	StartTime  string  `json:"startTime"` // "09:00"
	EndTime    string  `json:"endTime"`   // "18:00"
	BreakStart *string `json:"breakStart,omitempty"`
	BreakEnd   *string `json:"breakEnd,omitempty"`
}

// CreateTimeOffRequest запрос на создание отсутствия
type CreateTimeOffRequest struct {
	BusinessID int64     `json:"businessId"`
	StaffID    int64     `json:"staffId"`
	StartAt    time.Time `json:"startAt"`
	EndAt      time.Time `json:"endAt"`
	Reason     *string   `json:"reason,omitempty"`
}

// Response модели

// WorkingHoursResponse ответ с рабочими часами на день недели
type WorkingHoursResponse struct {
	ID         int64   `json:"id"`
	BusinessID int64   `json:"businessId"`
	StaffID    int64   `json:"staffId"`
	Weekday    int     `json:"weekday"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	BreakStart *string `json:"breakStart,omitempty"`
	BreakEnd   *string `json:"breakEnd,omitempty"`
	IsActive   bool    `json:"isActive"`
}

// WorkingHoursListResponse ответ с недельным расписанием сотрудника
type WorkingHoursListResponse struct {
	WorkingHours []WorkingHoursResponse `json:"workingHours"`
}

// TimeOffResponse ответ с данными отсутствия
type TimeOffResponse struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"businessId"`
	StaffID    int64     `json:"staffId"`
	StartAt    time.Time `json:"startAt"`
	EndAt      time.Time `json:"endAt"`
	Reason     *string   `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TimeOffListResponse ответ со списком отсутствий
type TimeOffListResponse struct {
	TimeOff []TimeOffResponse `json:"timeOff"`
}

// Методы конвертации

// ToDomainWorkingHours конвертирует request в domain модель
func (r *UpsertWorkingHoursRequest) ToDomainWorkingHours() (*domain.WorkingHours, error) {
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	wh := &domain.WorkingHours{
		BusinessID: r.BusinessID,
		StaffID:    r.StaffID,
		Weekday:    r.Weekday,
		StartTime:  start,
		EndTime:    end,
		IsActive:   true,
	}

	if r.BreakStart != nil {
		bs, err := types.NewTimeStringFromString(*r.BreakStart)
		if err != nil {
			return nil, err
		}
		wh.BreakStart = &bs
	}
	if r.BreakEnd != nil {
		be, err := types.NewTimeStringFromString(*r.BreakEnd)
		if err != nil {
			return nil, err
		}
		wh.BreakEnd = &be
	}

	return wh, nil
}

// FromDomainWorkingHours конвертирует domain модель в DTO
func FromDomainWorkingHours(wh *domain.WorkingHours) *WorkingHoursResponse {
	if wh == nil {
		return nil
	}

	resp := &WorkingHoursResponse{
		ID:         wh.ID,
		BusinessID: wh.BusinessID,
		StaffID:    wh.StaffID,
		Weekday:    wh.Weekday,
		StartTime:  wh.StartTime.String(),
		EndTime:    wh.EndTime.String(),
		IsActive:   wh.IsActive,
	}

	if wh.BreakStart != nil {
		bs := wh.BreakStart.String()
		resp.BreakStart = &bs
	}
	if wh.BreakEnd != nil {
		be := wh.BreakEnd.String()
		resp.BreakEnd = &be
	}

	return resp
}

// FromDomainWorkingHoursList конвертирует список domain моделей в DTO
func FromDomainWorkingHoursList(hours []*domain.WorkingHours) *WorkingHoursListResponse {
	resp := &WorkingHoursListResponse{
		WorkingHours: make([]WorkingHoursResponse, 0, len(hours)),
	}

	for _, wh := range hours {
		if whr := FromDomainWorkingHours(wh); whr != nil {
			resp.WorkingHours = append(resp.WorkingHours, *whr)
		}
	}

	return resp
}

// FromDomainTimeOff конвертирует domain модель в DTO
func FromDomainTimeOff(t *domain.TimeOff) *TimeOffResponse {
	if t == nil {
		return nil
	}

	return &TimeOffResponse{
		ID:         t.ID,
		BusinessID: t.BusinessID,
		StaffID:    t.StaffID,
		StartAt:    t.StartAt,
		EndAt:      t.EndAt,
		Reason:     t.Reason,
		CreatedAt:  t.CreatedAt,
	}
}

// FromDomainTimeOffList конвертирует список domain моделей в DTO
func FromDomainTimeOffList(timeOffs []*domain.TimeOff) *TimeOffListResponse {
	resp := &TimeOffListResponse{
		TimeOff: make([]TimeOffResponse, 0, len(timeOffs)),
	}

	for _, t := range timeOffs {
		if tr := FromDomainTimeOff(t); tr != nil {
			resp.TimeOff = append(resp.TimeOff, *tr)
		}
	}

	return resp
}
