package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
	serviceRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/service"
	staffRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/staff"
	linkRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/stafflink"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/catalog/models"
)

// Service сервис каталога услуг и связок сотрудник-услуга
type Service struct {
	serviceRepo ServiceRepository
	linkRepo    StaffLinkRepository
	staffRepo   StaffRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	linkRepo StaffLinkRepository,
	staffRepo StaffRepository,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		linkRepo:    linkRepo,
		staffRepo:   staffRepo,
		logger:      logger,
	}
}

// CreateService создает новую услугу бизнеса
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: creating service %q for business=%d", req.Name, req.BusinessID)

	if err := validateServiceInput(req.Name, req.DurationMinutes, req.Price); err != nil {
		s.logger.Warn("CreateService: validation failed for business=%d: %v", req.BusinessID, err)
		return nil, err
	}

	svc := &domain.Service{
		BusinessID:      req.BusinessID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		IsActive:        true,
	}

	created, err := s.serviceRepo.Create(ctx, svc)
	if err != nil {
		s.logger.Error("CreateService: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// GetService получает услугу по ID
func (s *Service) GetService(ctx context.Context, businessID, serviceID int64) (*models.ServiceResponse, error) {
	svc, err := s.serviceRepo.GetByID(ctx, businessID, serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetService: service id=%d not found in business=%d", serviceID, businessID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}

// ListServices получает услуги бизнеса
func (s *Service) ListServices(ctx context.Context, businessID int64, onlyActive bool) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.ListByBusiness(ctx, businessID, onlyActive)
	if err != nil {
		s.logger.Error("ListServices: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: fetched %d services for business=%d", len(services), businessID)
	return models.FromDomainServiceList(services), nil
}

// UpdateService обновляет услугу
func (s *Service) UpdateService(ctx context.Context, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: updating service id=%d in business=%d", req.ServiceID, req.BusinessID)

	if err := validateServiceInput(req.Name, req.DurationMinutes, req.Price); err != nil {
		s.logger.Warn("UpdateService: validation failed for service id=%d: %v", req.ServiceID, err)
		return nil, err
	}

	svc := &domain.Service{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		IsActive:        req.IsActive,
	}

	updated, err := s.serviceRepo.Update(ctx, req.BusinessID, req.ServiceID, svc)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%d not found in business=%d", req.ServiceID, req.BusinessID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: successfully updated service id=%d", req.ServiceID)
	return models.FromDomainService(updated), nil
}

// LinkStaffService привязывает сотрудника к услуге с опциональными
// переопределениями цены и длительности
func (s *Service) LinkStaffService(ctx context.Context, req *models.LinkStaffServiceRequest) (*models.StaffServiceResponse, error) {
	s.logger.Info("LinkStaffService: linking staff=%d to service=%d in business=%d",
		req.StaffID, req.ServiceID, req.BusinessID)

	// Сотрудник и услуга должны принадлежать этому бизнесу
	if _, err := s.staffRepo.GetByID(ctx, req.BusinessID, req.StaffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("LinkStaffService: staff id=%d not found in business=%d", req.StaffID, req.BusinessID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("LinkStaffService: repository error for staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: LinkStaffService - repository error: %v", ErrInternal, err)
	}

	if _, err := s.serviceRepo.GetByID(ctx, req.BusinessID, req.ServiceID); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("LinkStaffService: service id=%d not found in business=%d", req.ServiceID, req.BusinessID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("LinkStaffService: repository error for service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: LinkStaffService - repository error: %v", ErrInternal, err)
	}

	if err := validateOverrides(req.PriceOverride, req.DurationOverride); err != nil {
		s.logger.Warn("LinkStaffService: invalid overrides for staff=%d, service=%d: %v",
			req.StaffID, req.ServiceID, err)
		return nil, err
	}

	link := &domain.StaffService{
		BusinessID:       req.BusinessID,
		StaffID:          req.StaffID,
		ServiceID:        req.ServiceID,
		PriceOverride:    req.PriceOverride,
		DurationOverride: req.DurationOverride,
		IsActive:         true,
	}

	// Повторная привязка той же пары заменяет переопределения и
	// реактивирует связку после unlink
	upserted, err := s.linkRepo.Upsert(ctx, link)
	if err != nil {
		s.logger.Error("LinkStaffService: repository error: %v", err)
		return nil, fmt.Errorf("%w: LinkStaffService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("LinkStaffService: successfully linked, link id=%d", upserted.ID)
	return models.FromDomainStaffService(upserted), nil
}

// UnlinkStaffService отключает связку сотрудник-услуга
// Существующие бронирования не затрагиваются
func (s *Service) UnlinkStaffService(ctx context.Context, businessID, linkID int64) error {
	s.logger.Info("UnlinkStaffService: deactivating link id=%d in business=%d", linkID, businessID)

	if err := s.linkRepo.Deactivate(ctx, businessID, linkID); err != nil {
		if errors.Is(err, linkRepo.ErrLinkNotFound) {
			s.logger.Warn("UnlinkStaffService: link id=%d not found in business=%d", linkID, businessID)
			return ErrLinkNotFound
		}
		s.logger.Error("UnlinkStaffService: repository error for link id=%d: %v", linkID, err)
		return fmt.Errorf("%w: UnlinkStaffService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UnlinkStaffService: successfully deactivated link id=%d", linkID)
	return nil
}

// ListStaffServices получает активные связки сотрудника
func (s *Service) ListStaffServices(ctx context.Context, businessID, staffID int64) (*models.StaffServiceListResponse, error) {
	links, err := s.linkRepo.ListByStaff(ctx, businessID, staffID)
	if err != nil {
		s.logger.Error("ListStaffServices: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: ListStaffServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStaffServiceList(links), nil
}

// EffectiveOffering вычисляет итоговые длительность и цену для пары
// (сотрудник, услуга): переопределения связки поверх значений услуги
func (s *Service) EffectiveOffering(ctx context.Context, businessID, staffID, serviceID int64) (*models.OfferingResponse, error) {
	link, err := s.linkRepo.GetByStaffAndService(ctx, businessID, staffID, serviceID)
	if err != nil {
		if errors.Is(err, linkRepo.ErrLinkNotFound) {
			s.logger.Warn("EffectiveOffering: staff=%d does not provide service=%d", staffID, serviceID)
			return nil, ErrServiceNotLinked
		}
		s.logger.Error("EffectiveOffering: repository error: %v", err)
		return nil, fmt.Errorf("%w: EffectiveOffering - repository error: %v", ErrInternal, err)
	}

	svc, err := s.serviceRepo.GetByID(ctx, businessID, serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("EffectiveOffering: service id=%d not found in business=%d", serviceID, businessID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("EffectiveOffering: repository error for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: EffectiveOffering - repository error: %v", ErrInternal, err)
	}

	if !svc.IsActive {
		s.logger.Warn("EffectiveOffering: service id=%d is inactive", serviceID)
		return nil, ErrServiceNotFound
	}

	return models.FromDomainOffering(domain.ResolveOffering(link, svc)), nil
}

// Валидация

func validateServiceInput(name string, durationMinutes int, price int64) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if err := validateDuration(durationMinutes); err != nil {
		return err
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}

func validateOverrides(priceOverride *int64, durationOverride *int) error {
	if priceOverride != nil && *priceOverride < 0 {
		return fmt.Errorf("%w: priceOverride must not be negative", ErrInvalidInput)
	}
	if durationOverride != nil {
		if err := validateDuration(*durationOverride); err != nil {
			return err
		}
	}
	return nil
}

func validateDuration(durationMinutes int) error {
	if durationMinutes < domain.MinServiceDurationMinutes || durationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	return nil
}
