package upsert_working_hours

import (
	"github.com/avlebedev/SLB-BookingEngine/internal/service/schedule/models"
)

// UpsertWorkingHoursRequest HTTP request model
// weekday: 0 = понедельник .. 6 = воскресенье
type UpsertWorkingHoursRequest struct {
	Weekday    int     `json:"weekday"`
	StartTime  string  `json:"startTime"` // "09:00"
	EndTime    string  `json:"endTime"`   // "18:00"
	BreakStart *string `json:"breakStart,omitempty"`
	BreakEnd   *string `json:"breakEnd,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpsertWorkingHoursRequest) ToServiceRequest(businessID, staffID int64) *models.UpsertWorkingHoursRequest {
	return &models.UpsertWorkingHoursRequest{
		BusinessID: businessID,
		StaffID:    staffID,
		Weekday:    r.Weekday,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		BreakStart: r.BreakStart,
		BreakEnd:   r.BreakEnd,
	}
}
