package business

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
	businessRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/business"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/business/models"
)

// Service сервис для работы с бизнесами и контролем доступа
type Service struct {
	businessRepo BusinessRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса бизнесов
func NewService(businessRepo BusinessRepository, logger Logger) *Service {
	return &Service{
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// Create создает бизнес, назначая создателя владельцем
func (s *Service) Create(ctx context.Context, req *models.CreateBusinessRequest) (*models.BusinessResponse, error) {
	s.logger.Info("Create: creating business %q for owner=%d", req.Name, req.OwnerUserID)

	if req.Name == "" {
		s.logger.Warn("Create: name is required")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if req.Timezone == "" {
		req.Timezone = "UTC"
	}
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		s.logger.Warn("Create: invalid timezone %q", req.Timezone)
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, req.Timezone)
	}

	biz := &domain.Business{
		Name:     req.Name,
		Timezone: req.Timezone,
		IsActive: true,
	}

	created, err := s.businessRepo.Create(ctx, biz, req.OwnerUserID)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created business id=%d", created.ID)
	return models.FromDomainBusiness(created), nil
}

// GetByID получает бизнес по ID
func (s *Service) GetByID(ctx context.Context, businessID int64) (*models.BusinessResponse, error) {
	biz, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("GetByID: business id=%d not found", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetByID: repository error for business id=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBusiness(biz), nil
}

// CheckAccess проверяет, что пользователь состоит в бизнесе
// Любая операция в чужом бизнесе запрещена независимо от роли
func (s *Service) CheckAccess(ctx context.Context, userID, businessID int64) error {
	_, err := s.businessRepo.GetMembership(ctx, userID, businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrMembershipNotFound) {
			s.logger.Warn("CheckAccess: user=%d is not a member of business=%d", userID, businessID)
			return ErrAccessDenied
		}
		s.logger.Error("CheckAccess: repository error for user=%d, business=%d: %v", userID, businessID, err)
		return fmt.Errorf("%w: CheckAccess - repository error: %v", ErrInternal, err)
	}
	return nil
}

// AddMember добавляет пользователя в бизнес с ролью admin
func (s *Service) AddMember(ctx context.Context, businessID, userID int64) error {
	s.logger.Info("AddMember: adding user=%d to business=%d", userID, businessID)

	if _, err := s.businessRepo.GetByID(ctx, businessID); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("AddMember: business id=%d not found", businessID)
			return ErrBusinessNotFound
		}
		s.logger.Error("AddMember: repository error for business id=%d: %v", businessID, err)
		return fmt.Errorf("%w: AddMember - repository error: %v", ErrInternal, err)
	}

	member := &domain.BusinessUser{
		UserID:     userID,
		BusinessID: businessID,
		Role:       domain.RoleAdmin,
	}

	if err := s.businessRepo.AddMember(ctx, member); err != nil {
		s.logger.Error("AddMember: repository error: %v", err)
		return fmt.Errorf("%w: AddMember - repository error: %v", ErrInternal, err)
	}

	return nil
}
