package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
	businessRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/business"
	serviceRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/service"
	staffRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/staff"
	linkRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/stafflink"
	whRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/workinghours"
)

// UseCase use case создания бронирования
type UseCase struct {
	businessRepo BusinessRepository
	staffRepo    StaffRepository
	serviceRepo  ServiceRepository
	linkRepo     StaffLinkRepository
	whRepo       WorkingHoursRepository
	timeoffRepo  TimeOffRepository
	customerRepo CustomerRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	config       Config
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	businessRepo BusinessRepository,
	staffRepo StaffRepository,
	serviceRepo ServiceRepository,
	linkRepo StaffLinkRepository,
	whRepo WorkingHoursRepository,
	timeoffRepo TimeOffRepository,
	customerRepo CustomerRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	config Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		businessRepo: businessRepo,
		staffRepo:    staffRepo,
		serviceRepo:  serviceRepo,
		linkRepo:     linkRepo,
		whRepo:       whRepo,
		timeoffRepo:  timeoffRepo,
		customerRepo: customerRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		config:       config,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и вставка выполняются в сериализуемой транзакции:
// из двух конкурентных запросов на один интервал выигрывает ровно один
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: business=%d, staff=%d, service=%d, start=%s, phone=%s",
		req.BusinessID, req.StaffID, req.ServiceID, req.StartAt.Format(time.RFC3339), req.CustomerPhone)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем бизнес - его таймзона определяет рабочие часы
	biz, err := uc.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateBooking: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateBooking: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}
	loc := biz.Location()

	// 3. Получаем сотрудника
	staff, err := uc.staffRepo.GetByID(ctx, req.BusinessID, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateBooking: staff id=%d not found in business=%d", req.StaffID, req.BusinessID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateBooking: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if !staff.IsActive {
		uc.logger.Warn("CreateBooking: staff id=%d is inactive", req.StaffID)
		return nil, ErrStaffNotFound
	}

	// 4. Услуга и связка: итоговые длительность и цена
	svc, err := uc.serviceRepo.GetByID(ctx, req.BusinessID, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found in business=%d", req.ServiceID, req.BusinessID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !svc.IsActive {
		uc.logger.Warn("CreateBooking: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	link, err := uc.linkRepo.GetByStaffAndService(ctx, req.BusinessID, req.StaffID, req.ServiceID)
	if err != nil {
		if errors.Is(err, linkRepo.ErrLinkNotFound) {
			uc.logger.Warn("CreateBooking: staff=%d does not provide service=%d", req.StaffID, req.ServiceID)
			return nil, ErrServiceNotLinked
		}
		uc.logger.Error("CreateBooking: failed to get link: %v", err)
		return nil, fmt.Errorf("%w: failed to get staff service link: %v", ErrInternal, err)
	}

	offering := domain.ResolveOffering(link, svc)
	startAt := req.StartAt
	endAt := startAt.Add(time.Duration(offering.DurationMinutes) * time.Minute)

	// 5. Lead time и горизонт
	if err := validateLeadTime(startAt, now, uc.config.LeadTimeMinutes); err != nil {
		uc.logger.Warn("CreateBooking: lead time check failed: %v", err)
		return nil, err
	}
	if err := validateHorizon(startAt, now.In(loc), uc.config.HorizonDays); err != nil {
		uc.logger.Warn("CreateBooking: horizon check failed: %v", err)
		return nil, err
	}

	// 6. Интервал должен помещаться в рабочие часы сотрудника
	weekday := domain.Weekday(startAt.In(loc))
	wh, err := uc.whRepo.GetByStaffAndWeekday(ctx, req.BusinessID, req.StaffID, weekday)
	if err != nil && !errors.Is(err, whRepo.ErrWorkingHoursNotFound) {
		uc.logger.Error("CreateBooking: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}
	if err := validateWithinWorkingHours(wh, startAt, endAt, loc); err != nil {
		uc.logger.Warn("CreateBooking: slot %s-%s is outside working hours of staff=%d",
			startAt.Format(time.RFC3339), endAt.Format(time.RFC3339), req.StaffID)
		return nil, err
	}

	// 7. Отсутствия сотрудника
	timeOffs, err := uc.timeoffRepo.ListByStaffAndPeriod(ctx, req.BusinessID, req.StaffID, startAt, endAt)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get time off: %v", err)
		return nil, fmt.Errorf("%w: failed to get time off: %v", ErrInternal, err)
	}
	for _, t := range timeOffs {
		if t.Overlaps(startAt, endAt) {
			uc.logger.Warn("CreateBooking: slot conflicts with time off id=%d of staff=%d", t.ID, req.StaffID)
			return nil, ErrSlotConflict
		}
	}

	var result *domain.Booking

	// 8. Проверка пересечений и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Блокирующие брони с FOR UPDATE - точка сериализации
		blocking, err := uc.bookingRepo.GetBlockingForStaffAndPeriod(txCtx, req.BusinessID, req.StaffID, startAt, endAt, now)
		if err != nil {
			if isSerializationFailure(err) {
				return err
			}
			uc.logger.Error("CreateBooking: failed to get blocking bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		for _, b := range blocking {
			if b.Overlaps(startAt, endAt) {
				uc.logger.Warn("CreateBooking: slot conflicts with booking id=%d", b.ID)
				return ErrSlotConflict
			}
		}

		// 8.2. Клиент: телефон - его идентификатор внутри бизнеса
		customer, err := uc.customerRepo.UpsertByPhone(txCtx, &domain.Customer{
			BusinessID: req.BusinessID,
			Name:       req.CustomerName,
			Phone:      req.CustomerPhone,
			Email:      req.CustomerEmail,
		})
		if err != nil {
			if isSerializationFailure(err) {
				return err
			}
			uc.logger.Error("CreateBooking: failed to upsert customer: %v", err)
			return fmt.Errorf("%w: failed to upsert customer: %v", ErrInternal, err)
		}

		// 8.3. Создаем бронирование
		booking := &domain.Booking{
			BusinessID:      req.BusinessID,
			StaffID:         req.StaffID,
			StaffServiceID:  offering.StaffServiceID,
			CustomerID:      customer.ID,
			StartAt:         startAt,
			EndAt:           endAt,
			Price:           offering.Price,
			DurationMinutes: offering.DurationMinutes,
			CustomerName:    req.CustomerName,
			Comment:         req.Comment,
		}

		if req.ConfirmImmediately {
			booking.Status = domain.StatusConfirmed
		} else {
			booking.Status = domain.StatusHold
			expiresAt := now.Add(time.Duration(uc.config.HoldTTLMinutes) * time.Minute)
			booking.ExpiresAt = &expiresAt
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if isSerializationFailure(err) {
				return err
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// FOR UPDATE не блокирует вставку в пустой интервал: проигравшая
		// из двух одновременных транзакций падает на COMMIT с ошибкой
		// сериализации, для вызывающего это тот же конфликт слота
		if isSerializationFailure(err) {
			uc.logger.Warn("CreateBooking: serialization failure for staff=%d, start=%s", req.StaffID, startAt)
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, status=%s", result.ID, result.Status)

	return &Response{
		ID:              result.ID,
		BusinessID:      result.BusinessID,
		StaffID:         result.StaffID,
		StaffServiceID:  result.StaffServiceID,
		CustomerID:      result.CustomerID,
		StartAt:         result.StartAt,
		EndAt:           result.EndAt,
		Price:           result.Price,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ExpiresAt:       result.ExpiresAt,
		CustomerName:    result.CustomerName,
		Comment:         result.Comment,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// isSerializationFailure распознает ошибку сериализации Postgres (40001),
// которой завершается проигравшая конкурентная транзакция
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "40001"
}
