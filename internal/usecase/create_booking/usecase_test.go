package create_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
	linkRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/stafflink"
	"github.com/avlebedev/SLB-BookingEngine/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fakeBusinessRepo struct {
	biz *domain.Business
	err error
}

func (f *fakeBusinessRepo) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.biz, nil
}

type fakeStaffRepo struct {
	staff *domain.Staff
	err   error
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, businessID, id int64) (*domain.Staff, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.staff, nil
}

type fakeServiceRepo struct {
	svc *domain.Service
	err error
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, businessID, id int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.svc, nil
}

type fakeLinkRepo struct {
	link *domain.StaffService
	err  error
}

func (f *fakeLinkRepo) GetByStaffAndService(ctx context.Context, businessID, staffID, serviceID int64) (*domain.StaffService, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.link, nil
}

type fakeWHRepo struct {
	wh  *domain.WorkingHours
	err error
}

func (f *fakeWHRepo) GetByStaffAndWeekday(ctx context.Context, businessID, staffID int64, weekday int) (*domain.WorkingHours, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.wh, nil
}

type fakeTimeOffRepo struct {
	timeOffs []*domain.TimeOff
}

func (f *fakeTimeOffRepo) ListByStaffAndPeriod(ctx context.Context, businessID, staffID int64, start, end time.Time) ([]*domain.TimeOff, error) {
	return f.timeOffs, nil
}

type fakeCustomerRepo struct {
	nextID int64
}

func (f *fakeCustomerRepo) UpsertByPhone(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	f.nextID++
	created := *c
	created.ID = f.nextID
	return &created, nil
}

// fakeBookingRepo хранит созданные брони и отдает их как блокирующие
// при следующих запросах - достаточно для проверки "выигрывает один"
type fakeBookingRepo struct {
	nextID   int64
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.bookings = append(f.bookings, &created)
	return &created, nil
}

func (f *fakeBookingRepo) GetBlockingForStaffAndPeriod(ctx context.Context, businessID, staffID int64, start, end time.Time, now time.Time) ([]*domain.Booking, error) {
	blocking := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.IsBlocking(now) {
			blocking = append(blocking, b)
		}
	}
	return blocking, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// serialTxManager пропускает транзакции строго по одной, как
// SERIALIZABLE-изоляция для конкурирующих создающих вызовов
type serialTxManager struct {
	mu sync.Mutex
}

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// commitFailTxManager завершает транзакцию заданной ошибкой COMMIT
type commitFailTxManager struct {
	commitErr error
}

func (m commitFailTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return m.commitErr
}

type fixture struct {
	uc          *UseCase
	bookingRepo *fakeBookingRepo
	linkRepo    *fakeLinkRepo
	timeoffRepo *fakeTimeOffRepo
	clock       *fakeClock
}

// Понедельник 2026-03-16, сейчас 08:00 UTC, рабочий день 09:00-18:00
func newFixture(t *testing.T) *fixture {
	t.Helper()

	now := time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC)

	f := &fixture{
		bookingRepo: &fakeBookingRepo{},
		linkRepo: &fakeLinkRepo{link: &domain.StaffService{
			ID: 50, BusinessID: 1, StaffID: 2, ServiceID: 3, IsActive: true,
		}},
		timeoffRepo: &fakeTimeOffRepo{},
		clock:       &fakeClock{now: now},
	}

	f.uc = NewUseCase(
		&fakeBusinessRepo{biz: &domain.Business{ID: 1, Name: "Salon", Timezone: "UTC", IsActive: true}},
		&fakeStaffRepo{staff: &domain.Staff{ID: 2, BusinessID: 1, FirstName: "Anna", IsActive: true}},
		&fakeServiceRepo{svc: &domain.Service{ID: 3, BusinessID: 1, Name: "Haircut", DurationMinutes: 30, Price: 5000, IsActive: true}},
		f.linkRepo,
		&fakeWHRepo{wh: &domain.WorkingHours{
			StaffID: 2, Weekday: 0,
			StartTime: types.TimeString("09:00"), EndTime: types.TimeString("18:00"),
			IsActive: true,
		}},
		f.timeoffRepo,
		&fakeCustomerRepo{},
		f.bookingRepo,
		fakeTxManager{},
		Config{HoldTTLMinutes: 15, HorizonDays: 30, LeadTimeMinutes: 60},
		noopLogger{},
	)
	f.uc.timeProvider = f.clock

	return f
}

func validRequest(startAt time.Time) *Request {
	return &Request{
		BusinessID:    1,
		StaffID:       2,
		ServiceID:     3,
		StartAt:       startAt,
		CustomerName:  "Ivan",
		CustomerPhone: "+79990001122",
	}
}

func TestExecute_CreatesHold(t *testing.T) {
	f := newFixture(t)
	startAt := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)

	resp, err := f.uc.Execute(context.Background(), validRequest(startAt))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusHold), resp.Status)
	assert.Equal(t, startAt, resp.StartAt)
	assert.Equal(t, startAt.Add(30*time.Minute), resp.EndAt)
	assert.Equal(t, int64(5000), resp.Price)
	assert.Equal(t, int64(50), resp.StaffServiceID)

	require.NotNil(t, resp.ExpiresAt)
	assert.Equal(t, f.clock.now.Add(15*time.Minute), *resp.ExpiresAt)
}

func TestExecute_ConfirmImmediately(t *testing.T) {
	f := newFixture(t)
	req := validRequest(time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC))
	req.ConfirmImmediately = true

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Nil(t, resp.ExpiresAt)
}

func TestExecute_OverridesWin(t *testing.T) {
	f := newFixture(t)
	price := int64(7000)
	duration := 45
	f.linkRepo.link.PriceOverride = &price
	f.linkRepo.link.DurationOverride = &duration

	startAt := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
	resp, err := f.uc.Execute(context.Background(), validRequest(startAt))
	require.NoError(t, err)

	assert.Equal(t, int64(7000), resp.Price)
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, startAt.Add(45*time.Minute), resp.EndAt)
}

func TestExecute_SecondBookingLoses(t *testing.T) {
	f := newFixture(t)
	startAt := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), validRequest(startAt))
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), validRequest(startAt))
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Len(t, f.bookingRepo.bookings, 1)
}

func TestExecute_ConcurrentCreatesSingleWinner(t *testing.T) {
	f := newFixture(t)
	f.uc.txManager = &serialTxManager{}
	startAt := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Execute(context.Background(), validRequest(startAt))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var wins, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrSlotConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, conflicts)
	assert.Len(t, f.bookingRepo.bookings, 1)
}

func TestExecute_SerializationFailureIsSlotConflict(t *testing.T) {
	f := newFixture(t)
	// Проигравшая из двух одновременных транзакций падает на COMMIT
	// с ошибкой сериализации Postgres
	f.uc.txManager = commitFailTxManager{
		commitErr: fmt.Errorf("txmanager: commit: %w", &pq.Error{Code: "40001"}),
	}

	_, err := f.uc.Execute(context.Background(), validRequest(time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)))
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_AdjacentBookingDoesNotBlock(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), validRequest(time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	// Бронь 10:00-10:30 не мешает брони с началом ровно в 10:30
	_, err = f.uc.Execute(context.Background(), validRequest(time.Date(2026, 3, 16, 10, 30, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Len(t, f.bookingRepo.bookings, 2)
}

func TestExecute_ExpiredHoldDoesNotBlock(t *testing.T) {
	f := newFixture(t)
	startAt := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), validRequest(startAt))
	require.NoError(t, err)

	// Через 20 минут hold с TTL 15 минут истек и интервал свободен
	f.clock.now = f.clock.now.Add(20 * time.Minute)

	resp, err := f.uc.Execute(context.Background(), validRequest(startAt))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusHold), resp.Status)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	f := newFixture(t)

	// 17:45 + 30 минут вылезает за конец дня 18:00
	_, err := f.uc.Execute(context.Background(), validRequest(time.Date(2026, 3, 16, 17, 45, 0, 0, time.UTC)))
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_TimeOffConflict(t *testing.T) {
	f := newFixture(t)
	f.timeoffRepo.timeOffs = []*domain.TimeOff{{
		ID: 9, BusinessID: 1, StaffID: 2,
		StartAt: time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC),
	}}

	_, err := f.uc.Execute(context.Background(), validRequest(time.Date(2026, 3, 16, 11, 0, 0, 0, time.UTC)))
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, f.bookingRepo.bookings)
}

func TestExecute_LeadTimeViolation(t *testing.T) {
	f := newFixture(t)

	// Сейчас 08:00, lead time 60 минут: бронь на 08:30 уже поздно
	_, err := f.uc.Execute(context.Background(), validRequest(time.Date(2026, 3, 16, 8, 30, 0, 0, time.UTC)))
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_BeyondHorizon(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), validRequest(time.Date(2026, 4, 20, 10, 0, 0, 0, time.UTC)))
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_ServiceNotLinked(t *testing.T) {
	f := newFixture(t)
	f.linkRepo.link = nil
	f.linkRepo.err = linkRepo.ErrLinkNotFound

	_, err := f.uc.Execute(context.Background(), validRequest(time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)))
	assert.ErrorIs(t, err, ErrServiceNotLinked)
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture(t)

	req := validRequest(time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC))
	req.CustomerPhone = ""

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
