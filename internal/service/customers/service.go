package customers

import (
	"context"
	"errors"
	"fmt"

	customerRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/customer"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/customers/models"
)

// Service сервис справочника клиентов бизнеса
// Клиенты появляются в справочнике автоматически при создании брони
type Service struct {
	customerRepo CustomerRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(customerRepo CustomerRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, businessID, customerID int64) (*models.CustomerResponse, error) {
	customer, err := s.customerRepo.GetByID(ctx, businessID, customerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetByID: customer id=%d not found in business=%d", customerID, businessID)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetByID: repository error for customer id=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCustomer(customer), nil
}

// List получает клиентов бизнеса с опциональным поиском по имени или телефону
func (s *Service) List(ctx context.Context, businessID int64, search *string) (*models.CustomerListResponse, error) {
	customers, err := s.customerRepo.ListByBusiness(ctx, businessID, search)
	if err != nil {
		s.logger.Error("List: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d customers for business=%d", len(customers), businessID)
	return models.FromDomainCustomerList(customers), nil
}
