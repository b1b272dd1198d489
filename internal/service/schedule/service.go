package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
	staffRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/staff"
	timeoffRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/timeoff"
	whRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/workinghours"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/schedule/models"
)

// Service сервис расписаний: рабочие часы и отсутствия сотрудников
type Service struct {
	whRepo      WorkingHoursRepository
	timeoffRepo TimeOffRepository
	staffRepo   StaffRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	whRepo WorkingHoursRepository,
	timeoffRepo TimeOffRepository,
	staffRepo StaffRepository,
	logger Logger,
) *Service {
	return &Service{
		whRepo:      whRepo,
		timeoffRepo: timeoffRepo,
		staffRepo:   staffRepo,
		logger:      logger,
	}
}

// UpsertWorkingHours устанавливает рабочие часы сотрудника на день недели
// Повторный вызов для той же пары (сотрудник, день) заменяет запись
func (s *Service) UpsertWorkingHours(ctx context.Context, req *models.UpsertWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	s.logger.Info("UpsertWorkingHours: staff=%d, weekday=%d, %s-%s in business=%d",
		req.StaffID, req.Weekday, req.StartTime, req.EndTime, req.BusinessID)

	if err := s.checkStaff(ctx, req.BusinessID, req.StaffID); err != nil {
		return nil, err
	}

	wh, err := req.ToDomainWorkingHours()
	if err != nil {
		s.logger.Warn("UpsertWorkingHours: invalid time format for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := wh.Validate(); err != nil {
		s.logger.Warn("UpsertWorkingHours: validation failed for staff=%d: %v", req.StaffID, err)
		if errors.Is(err, domain.ErrInvalidWeekday) {
			return nil, ErrInvalidWeekday
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	saved, err := s.whRepo.Upsert(ctx, wh)
	if err != nil {
		s.logger.Error("UpsertWorkingHours: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: UpsertWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertWorkingHours: saved working hours id=%d for staff=%d, weekday=%d",
		saved.ID, req.StaffID, req.Weekday)
	return models.FromDomainWorkingHours(saved), nil
}

// ListWorkingHours получает недельное расписание сотрудника
func (s *Service) ListWorkingHours(ctx context.Context, businessID, staffID int64) (*models.WorkingHoursListResponse, error) {
	if err := s.checkStaff(ctx, businessID, staffID); err != nil {
		return nil, err
	}

	hours, err := s.whRepo.ListByStaff(ctx, businessID, staffID)
	if err != nil {
		s.logger.Error("ListWorkingHours: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: ListWorkingHours - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWorkingHoursList(hours), nil
}

// DeleteWorkingHours удаляет рабочие часы на день недели
// День без записи считается нерабочим
func (s *Service) DeleteWorkingHours(ctx context.Context, businessID, staffID int64, weekday int) error {
	s.logger.Info("DeleteWorkingHours: staff=%d, weekday=%d in business=%d", staffID, weekday, businessID)

	if weekday < 0 || weekday > 6 {
		return ErrInvalidWeekday
	}

	if err := s.whRepo.Delete(ctx, businessID, staffID, weekday); err != nil {
		if errors.Is(err, whRepo.ErrWorkingHoursNotFound) {
			s.logger.Warn("DeleteWorkingHours: no working hours for staff=%d, weekday=%d", staffID, weekday)
			return ErrWorkingHoursNotFound
		}
		s.logger.Error("DeleteWorkingHours: repository error for staff=%d: %v", staffID, err)
		return fmt.Errorf("%w: DeleteWorkingHours - repository error: %v", ErrInternal, err)
	}

	return nil
}

// CreateTimeOff создает отсутствие сотрудника
// Интервал отсутствия исключается из доступности
func (s *Service) CreateTimeOff(ctx context.Context, req *models.CreateTimeOffRequest) (*models.TimeOffResponse, error) {
	s.logger.Info("CreateTimeOff: staff=%d, %s - %s in business=%d",
		req.StaffID, req.StartAt, req.EndAt, req.BusinessID)

	if err := s.checkStaff(ctx, req.BusinessID, req.StaffID); err != nil {
		return nil, err
	}

	interval := domain.TimeRange{Start: req.StartAt, End: req.EndAt}
	if req.StartAt.IsZero() || req.EndAt.IsZero() || !interval.IsValid() {
		s.logger.Warn("CreateTimeOff: invalid range for staff=%d", req.StaffID)
		return nil, ErrInvalidTimeRange
	}

	timeOff := &domain.TimeOff{
		BusinessID: req.BusinessID,
		StaffID:    req.StaffID,
		StartAt:    req.StartAt,
		EndAt:      req.EndAt,
		Reason:     req.Reason,
	}

	created, err := s.timeoffRepo.Create(ctx, timeOff)
	if err != nil {
		s.logger.Error("CreateTimeOff: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: CreateTimeOff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTimeOff: created time off id=%d for staff=%d", created.ID, req.StaffID)
	return models.FromDomainTimeOff(created), nil
}

// ListTimeOff получает отсутствия сотрудника
func (s *Service) ListTimeOff(ctx context.Context, businessID, staffID int64) (*models.TimeOffListResponse, error) {
	if err := s.checkStaff(ctx, businessID, staffID); err != nil {
		return nil, err
	}

	timeOffs, err := s.timeoffRepo.ListByStaff(ctx, businessID, staffID)
	if err != nil {
		s.logger.Error("ListTimeOff: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: ListTimeOff - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTimeOffList(timeOffs), nil
}

// DeleteTimeOff удаляет запись отсутствия
func (s *Service) DeleteTimeOff(ctx context.Context, businessID, id int64) error {
	s.logger.Info("DeleteTimeOff: deleting time off id=%d in business=%d", id, businessID)

	if err := s.timeoffRepo.Delete(ctx, businessID, id); err != nil {
		if errors.Is(err, timeoffRepo.ErrTimeOffNotFound) {
			s.logger.Warn("DeleteTimeOff: time off id=%d not found in business=%d", id, businessID)
			return ErrTimeOffNotFound
		}
		s.logger.Error("DeleteTimeOff: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteTimeOff - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Вспомогательные методы

// checkStaff проверяет, что сотрудник принадлежит бизнесу
func (s *Service) checkStaff(ctx context.Context, businessID, staffID int64) error {
	if _, err := s.staffRepo.GetByID(ctx, businessID, staffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("checkStaff: staff id=%d not found in business=%d", staffID, businessID)
			return ErrStaffNotFound
		}
		s.logger.Error("checkStaff: repository error for staff id=%d: %v", staffID, err)
		return fmt.Errorf("%w: checkStaff - repository error: %v", ErrInternal, err)
	}
	return nil
}
