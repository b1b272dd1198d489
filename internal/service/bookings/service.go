package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
	bookingRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/booking"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/bookings/models"
)

// Service сервис для работы с жизненным циклом бронирований
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID в рамках бизнеса
// Истекший, но еще не пожатый reaper-ом hold отдается со статусом expired
func (s *Service) GetByID(ctx context.Context, businessID, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for business=%d", id, businessID)

	booking, err := s.bookingRepo.GetByID(ctx, businessID, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found in business=%d", id, businessID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.applyLazyExpiry(booking)

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// List получает бронирования бизнеса с гибкой фильтрацией
// по сотруднику, клиенту, периоду и статусу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for business=%d", req.BusinessID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	bookingsList, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	for _, b := range bookingsList {
		s.applyLazyExpiry(b)
	}

	s.logger.Info("List: successfully fetched %d bookings for business=%d", len(bookingsList), req.BusinessID)
	return models.FromDomainBookingList(bookingsList), nil
}

// Confirm подтверждает hold, переводя его в confirmed
// Истекший hold подтвердить нельзя: он помечается expired, возвращается ошибка
func (s *Service) Confirm(ctx context.Context, req *models.ConfirmBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%d in business=%d", req.BookingID, req.BusinessID)

	now := s.timeProvider.Now()

	rowsAffected, err := s.bookingRepo.Confirm(ctx, req.BusinessID, req.BookingID, now)
	if err != nil {
		s.logger.Error("Confirm: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	// Guard-update не затронул строку: разбираемся почему
	if rowsAffected == 0 {
		return nil, s.resolveConfirmFailure(ctx, req.BusinessID, req.BookingID, now)
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BusinessID, req.BookingID)
	if err != nil {
		s.logger.Error("Confirm: failed to reload booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Confirm - failed to reload booking: %v", ErrInternal, err)
	}

	s.logger.Info("Confirm: successfully confirmed booking id=%d", req.BookingID)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование со статусом hold или confirmed
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d in business=%d", req.BookingID, req.BusinessID)

	now := s.timeProvider.Now()

	rowsAffected, err := s.bookingRepo.Cancel(ctx, req.BusinessID, req.BookingID, req.Reason, now)
	if err != nil {
		s.logger.Error("Cancel: repository error for booking id=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if rowsAffected == 0 {
		booking, err := s.bookingRepo.GetByID(ctx, req.BusinessID, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Cancel: booking id=%d not found in business=%d", req.BookingID, req.BusinessID)
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", req.BookingID, booking.Status)
		return ErrCannotCancel
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", req.BookingID)
	return nil
}

// ExpireLapsed переводит все истекшие hold в expired
// Вызывается фоновым reaper-ом; возвращает количество затронутых строк
func (s *Service) ExpireLapsed(ctx context.Context) (int64, error) {
	now := s.timeProvider.Now()

	expired, err := s.bookingRepo.ExpireLapsed(ctx, now)
	if err != nil {
		s.logger.Error("ExpireLapsed: repository error: %v", err)
		return 0, fmt.Errorf("%w: ExpireLapsed - repository error: %v", ErrInternal, err)
	}

	if expired > 0 {
		s.logger.Info("ExpireLapsed: expired %d lapsed holds", expired)
	}

	return expired, nil
}

// Вспомогательные методы

// resolveConfirmFailure выясняет причину, по которой guard-update подтверждения
// не затронул ни одной строки: бронирование не найдено, hold истек
// или статус не допускает подтверждение
func (s *Service) resolveConfirmFailure(ctx context.Context, businessID, bookingID int64, now time.Time) error {
	booking, err := s.bookingRepo.GetByID(ctx, businessID, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Confirm: booking id=%d not found in business=%d", bookingID, businessID)
			return ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	if booking.Status == domain.StatusHold && booking.IsHoldExpired(now) {
		// Ленивое устаревание: помечаем истекший hold при первом обращении
		if err := s.bookingRepo.MarkExpired(ctx, businessID, bookingID, now); err != nil {
			s.logger.Error("Confirm: failed to mark booking id=%d expired: %v", bookingID, err)
		}
		s.logger.Warn("Confirm: hold id=%d has expired", bookingID)
		return ErrHoldExpired
	}

	if booking.Status == domain.StatusExpired {
		s.logger.Warn("Confirm: hold id=%d already expired", bookingID)
		return ErrHoldExpired
	}

	s.logger.Warn("Confirm: booking id=%d has status=%s, cannot confirm", bookingID, booking.Status)
	return ErrInvalidTransition
}

// applyLazyExpiry меняет статус истекшего hold на expired в выдаче,
// не дожидаясь фонового reaper-а. Хранилище не трогаем - reaper догонит.
func (s *Service) applyLazyExpiry(b *domain.Booking) {
	if b.Status == domain.StatusHold && b.IsHoldExpired(s.timeProvider.Now()) {
		b.Status = domain.StatusExpired
	}
}
