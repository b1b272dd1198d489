package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
	businessRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/business"
	serviceRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/service"
	staffRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/staff"
	linkRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/stafflink"
	whRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/workinghours"
)

// UseCase use case генерации доступных слотов для пары (сотрудник, услуга)
type UseCase struct {
	businessRepo BusinessRepository
	staffRepo    StaffRepository
	serviceRepo  ServiceRepository
	linkRepo     StaffLinkRepository
	whRepo       WorkingHoursRepository
	timeoffRepo  TimeOffRepository
	bookingRepo  BookingRepository
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
	bookingRepo BookingRepository,
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
		bookingRepo:  bookingRepo,
		config:       config,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case генерации доступных слотов
// Результат вычисляется на лету и нигде не хранится
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%d, staff=%d, service=%d, date=%s",
		req.BusinessID, req.StaffID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем бизнес - его таймзона определяет границы дня
	biz, err := uc.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableSlots: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}
	loc := biz.Location()

	// 3. Проверяем горизонт бронирования
	if err := validateHorizon(req.Date, now.In(loc), uc.config.HorizonDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: horizon check failed: %v", err)
		return nil, err
	}

	// 4. Получаем сотрудника
	staff, err := uc.staffRepo.GetByID(ctx, req.BusinessID, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("GetAvailableSlots: staff id=%d not found in business=%d", req.StaffID, req.BusinessID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if !staff.IsActive {
		uc.logger.Warn("GetAvailableSlots: staff id=%d is inactive", req.StaffID)
		return nil, ErrStaffNotFound
	}

	// 5. Получаем услугу и связку - из них складывается итоговая длительность
	svc, err := uc.serviceRepo.GetByID(ctx, req.BusinessID, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found in business=%d", req.ServiceID, req.BusinessID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !svc.IsActive {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	link, err := uc.linkRepo.GetByStaffAndService(ctx, req.BusinessID, req.StaffID, req.ServiceID)
	if err != nil {
		if errors.Is(err, linkRepo.ErrLinkNotFound) {
			uc.logger.Warn("GetAvailableSlots: staff=%d does not provide service=%d", req.StaffID, req.ServiceID)
			return nil, ErrServiceNotLinked
		}
		uc.logger.Error("GetAvailableSlots: failed to get link: %v", err)
		return nil, fmt.Errorf("%w: failed to get staff service link: %v", ErrInternal, err)
	}

	offering := domain.ResolveOffering(link, svc)

	// 6. Рабочие часы на день недели запрошенной даты
	// День без записи - нерабочий: пустой список слотов
	weekday := domain.Weekday(req.Date)
	wh, err := uc.whRepo.GetByStaffAndWeekday(ctx, req.BusinessID, req.StaffID, weekday)
	if err != nil && !errors.Is(err, whRepo.ErrWorkingHoursNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}
	if wh == nil {
		uc.logger.Info("GetAvailableSlots: staff=%d has no working hours on weekday=%d", req.StaffID, weekday)
		return uc.emptyResponse(req, offering), nil
	}

	// 7. Занятость на календарные сутки даты в таймзоне бизнеса
	y, m, d := req.Date.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	bookings, err := uc.bookingRepo.GetBlockingForStaffAndPeriod(ctx, req.BusinessID, req.StaffID, dayStart, dayEnd, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocking bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	timeOffs, err := uc.timeoffRepo.ListByStaffAndPeriod(ctx, req.BusinessID, req.StaffID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get time off: %v", err)
		return nil, fmt.Errorf("%w: failed to get time off: %v", ErrInternal, err)
	}

	// 8. Чистая генерация слотов
	leadTime := time.Duration(uc.config.LeadTimeMinutes) * time.Minute
	slots, err := computeDaySlots(wh, bookings, timeOffs, req.Date, loc, now, leadTime, offering.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for staff=%d, service=%d, date=%s",
		len(slots), req.StaffID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date.Format(domain.DateFormat),
		BusinessID:      req.BusinessID,
		StaffID:         req.StaffID,
		ServiceID:       req.ServiceID,
		DurationMinutes: offering.DurationMinutes,
		Price:           offering.Price,
		Slots:           slots,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request, offering domain.Offering) *Response {
	return &Response{
		Date:            req.Date.Format(domain.DateFormat),
		BusinessID:      req.BusinessID,
		StaffID:         req.StaffID,
		ServiceID:       req.ServiceID,
		DurationMinutes: offering.DurationMinutes,
		Price:           offering.Price,
		Slots:           []Slot{},
	}
}
