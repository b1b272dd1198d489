package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
	staffRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/staff"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/staff/models"
)

// Service сервис для работы с сотрудниками
type Service struct {
	staffRepo StaffRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// Create создает нового сотрудника
func (s *Service) Create(ctx context.Context, req *models.CreateStaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("Create: creating staff %q for business=%d", req.FirstName, req.BusinessID)

	if req.FirstName == "" {
		s.logger.Warn("Create: firstName is required for business=%d", req.BusinessID)
		return nil, fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	}

	staff := &domain.Staff{
		BusinessID: req.BusinessID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Email:      req.Email,
		IsActive:   true,
	}

	created, err := s.staffRepo.Create(ctx, staff)
	if err != nil {
		s.logger.Error("Create: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created staff id=%d", created.ID)
	return models.FromDomainStaff(created), nil
}

// GetByID получает сотрудника по ID
func (s *Service) GetByID(ctx context.Context, businessID, staffID int64) (*models.StaffResponse, error) {
	staff, err := s.staffRepo.GetByID(ctx, businessID, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("GetByID: staff id=%d not found in business=%d", staffID, businessID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetByID: repository error for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStaff(staff), nil
}

// List получает сотрудников бизнеса
func (s *Service) List(ctx context.Context, businessID int64, onlyActive bool) (*models.StaffListResponse, error) {
	staffList, err := s.staffRepo.ListByBusiness(ctx, businessID, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d staff for business=%d", len(staffList), businessID)
	return models.FromDomainStaffList(staffList), nil
}

// Update обновляет данные сотрудника
// Деактивация сотрудника убирает его из доступности, но не трогает брони
func (s *Service) Update(ctx context.Context, req *models.UpdateStaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("Update: updating staff id=%d in business=%d", req.StaffID, req.BusinessID)

	if req.FirstName == "" {
		s.logger.Warn("Update: firstName is required for staff id=%d", req.StaffID)
		return nil, fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	}

	staff := &domain.Staff{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		IsActive:  req.IsActive,
	}

	updated, err := s.staffRepo.Update(ctx, req.BusinessID, req.StaffID, staff)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("Update: staff id=%d not found in business=%d", req.StaffID, req.BusinessID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("Update: repository error for staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated staff id=%d", req.StaffID)
	return models.FromDomainStaff(updated), nil
}
