package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
	serviceRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/service"
	staffRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/staff"
	linkRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/stafflink"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/catalog/models"
	"github.com/avlebedev/SLB-BookingEngine/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeServiceRepo struct {
	nextID   int64
	services map[int64]*domain.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[int64]*domain.Service)}
}

func (f *fakeServiceRepo) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	f.nextID++
	created := *s
	created.ID = f.nextID
	f.services[created.ID] = &created
	return &created, nil
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, businessID, id int64) (*domain.Service, error) {
	s, ok := f.services[id]
	if !ok || s.BusinessID != businessID {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return s, nil
}

func (f *fakeServiceRepo) ListByBusiness(ctx context.Context, businessID int64, onlyActive bool) ([]*domain.Service, error) {
	result := make([]*domain.Service, 0)
	for _, s := range f.services {
		if s.BusinessID != businessID {
			continue
		}
		if onlyActive && !s.IsActive {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (f *fakeServiceRepo) Update(ctx context.Context, businessID, id int64, s *domain.Service) (*domain.Service, error) {
	existing, ok := f.services[id]
	if !ok || existing.BusinessID != businessID {
		return nil, serviceRepo.ErrServiceNotFound
	}
	existing.Name = s.Name
	existing.Description = s.Description
	existing.DurationMinutes = s.DurationMinutes
	existing.Price = s.Price
	existing.IsActive = s.IsActive
	return existing, nil
}

// fakeLinkRepo повторяет upsert по уникальному ключу (staff_id, service_id):
// повторная привязка обновляет строку, а не создает новую
type fakeLinkRepo struct {
	nextID int64
	links  map[int64]*domain.StaffService
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{links: make(map[int64]*domain.StaffService)}
}

func (f *fakeLinkRepo) Upsert(ctx context.Context, link *domain.StaffService) (*domain.StaffService, error) {
	for _, l := range f.links {
		if l.StaffID == link.StaffID && l.ServiceID == link.ServiceID {
			l.PriceOverride = link.PriceOverride
			l.DurationOverride = link.DurationOverride
			l.IsActive = link.IsActive
			return l, nil
		}
	}
	f.nextID++
	created := *link
	created.ID = f.nextID
	f.links[created.ID] = &created
	return &created, nil
}

func (f *fakeLinkRepo) GetByStaffAndService(ctx context.Context, businessID, staffID, serviceID int64) (*domain.StaffService, error) {
	for _, l := range f.links {
		if l.BusinessID == businessID && l.StaffID == staffID && l.ServiceID == serviceID && l.IsActive {
			return l, nil
		}
	}
	return nil, linkRepo.ErrLinkNotFound
}

func (f *fakeLinkRepo) ListByStaff(ctx context.Context, businessID, staffID int64) ([]*domain.StaffService, error) {
	result := make([]*domain.StaffService, 0)
	for _, l := range f.links {
		if l.BusinessID == businessID && l.StaffID == staffID && l.IsActive {
			result = append(result, l)
		}
	}
	return result, nil
}

func (f *fakeLinkRepo) Deactivate(ctx context.Context, businessID, id int64) error {
	l, ok := f.links[id]
	if !ok || l.BusinessID != businessID || !l.IsActive {
		return linkRepo.ErrLinkNotFound
	}
	l.IsActive = false
	return nil
}

type fakeStaffRepo struct {
	knownStaff map[int64]bool
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, businessID, id int64) (*domain.Staff, error) {
	if !f.knownStaff[id] {
		return nil, staffRepo.ErrStaffNotFound
	}
	return &domain.Staff{ID: id, BusinessID: businessID, FirstName: "Anna", IsActive: true}, nil
}

type fixture struct {
	svc      *Service
	services *fakeServiceRepo
	links    *fakeLinkRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		services: newFakeServiceRepo(),
		links:    newFakeLinkRepo(),
	}
	f.svc = NewService(f.services, f.links, &fakeStaffRepo{knownStaff: map[int64]bool{2: true}}, noopLogger{})
	return f
}

func (f *fixture) seedService(t *testing.T) *models.ServiceResponse {
	t.Helper()

	created, err := f.svc.CreateService(context.Background(), &models.CreateServiceRequest{
		BusinessID:      1,
		Name:            "Haircut",
		DurationMinutes: 30,
		Price:           5000,
	})
	require.NoError(t, err)
	return created
}

func TestCreateService_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.CreateServiceRequest
	}{
		{"empty name", &models.CreateServiceRequest{BusinessID: 1, DurationMinutes: 30, Price: 100}},
		{"zero duration", &models.CreateServiceRequest{BusinessID: 1, Name: "X", Price: 100}},
		{"duration below minimum", &models.CreateServiceRequest{BusinessID: 1, Name: "X", DurationMinutes: domain.MinServiceDurationMinutes - 1, Price: 100}},
		{"duration above maximum", &models.CreateServiceRequest{BusinessID: 1, Name: "X", DurationMinutes: domain.MaxServiceDurationMinutes + 1, Price: 100}},
		{"negative price", &models.CreateServiceRequest{BusinessID: 1, Name: "X", DurationMinutes: 30, Price: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.svc.CreateService(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestLinkStaffService_RepeatUpdatesOverrides(t *testing.T) {
	f := newFixture(t)
	svc := f.seedService(t)

	first, err := f.svc.LinkStaffService(context.Background(), &models.LinkStaffServiceRequest{
		BusinessID: 1, StaffID: 2, ServiceID: svc.ID,
	})
	require.NoError(t, err)

	second, err := f.svc.LinkStaffService(context.Background(), &models.LinkStaffServiceRequest{
		BusinessID: 1, StaffID: 2, ServiceID: svc.ID,
		PriceOverride:    ptr.Ptr(int64(7000)),
		DurationOverride: ptr.Ptr(45),
	})
	require.NoError(t, err)

	// Та же строка, а не дубликат
	assert.Equal(t, first.ID, second.ID)

	offering, err := f.svc.EffectiveOffering(context.Background(), 1, 2, svc.ID)
	require.NoError(t, err)
	assert.Equal(t, 45, offering.DurationMinutes)
	assert.Equal(t, int64(7000), offering.Price)
}

func TestLinkStaffService_RelinkAfterUnlink(t *testing.T) {
	f := newFixture(t)
	svc := f.seedService(t)

	link, err := f.svc.LinkStaffService(context.Background(), &models.LinkStaffServiceRequest{
		BusinessID: 1, StaffID: 2, ServiceID: svc.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.UnlinkStaffService(context.Background(), 1, link.ID))
	_, err = f.svc.EffectiveOffering(context.Background(), 1, 2, svc.ID)
	require.ErrorIs(t, err, ErrServiceNotLinked)

	// Повторная привязка реактивирует связку
	relinked, err := f.svc.LinkStaffService(context.Background(), &models.LinkStaffServiceRequest{
		BusinessID: 1, StaffID: 2, ServiceID: svc.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, link.ID, relinked.ID)

	offering, err := f.svc.EffectiveOffering(context.Background(), 1, 2, svc.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, offering.DurationMinutes)
}

func TestLinkStaffService_UnknownStaff(t *testing.T) {
	f := newFixture(t)
	svc := f.seedService(t)

	_, err := f.svc.LinkStaffService(context.Background(), &models.LinkStaffServiceRequest{
		BusinessID: 1, StaffID: 99, ServiceID: svc.ID,
	})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestLinkStaffService_InvalidOverrides(t *testing.T) {
	f := newFixture(t)
	svc := f.seedService(t)

	_, err := f.svc.LinkStaffService(context.Background(), &models.LinkStaffServiceRequest{
		BusinessID: 1, StaffID: 2, ServiceID: svc.ID,
		DurationOverride: ptr.Ptr(0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.LinkStaffService(context.Background(), &models.LinkStaffServiceRequest{
		BusinessID: 1, StaffID: 2, ServiceID: svc.ID,
		DurationOverride: ptr.Ptr(domain.MaxServiceDurationMinutes + 1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUnlinkStaffService(t *testing.T) {
	f := newFixture(t)
	svc := f.seedService(t)

	link, err := f.svc.LinkStaffService(context.Background(), &models.LinkStaffServiceRequest{
		BusinessID: 1, StaffID: 2, ServiceID: svc.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.UnlinkStaffService(context.Background(), 1, link.ID))

	links, err := f.svc.ListStaffServices(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Empty(t, links.Links)

	// Повторный unlink той же связки
	assert.ErrorIs(t, f.svc.UnlinkStaffService(context.Background(), 1, link.ID), ErrLinkNotFound)
}

func TestEffectiveOffering_Defaults(t *testing.T) {
	f := newFixture(t)
	svc := f.seedService(t)

	_, err := f.svc.LinkStaffService(context.Background(), &models.LinkStaffServiceRequest{
		BusinessID: 1, StaffID: 2, ServiceID: svc.ID,
	})
	require.NoError(t, err)

	offering, err := f.svc.EffectiveOffering(context.Background(), 1, 2, svc.ID)
	require.NoError(t, err)

	assert.Equal(t, 30, offering.DurationMinutes)
	assert.Equal(t, int64(5000), offering.Price)
}

func TestEffectiveOffering_OverridesWin(t *testing.T) {
	f := newFixture(t)
	svc := f.seedService(t)

	_, err := f.svc.LinkStaffService(context.Background(), &models.LinkStaffServiceRequest{
		BusinessID: 1, StaffID: 2, ServiceID: svc.ID,
		PriceOverride:    ptr.Ptr(int64(7000)),
		DurationOverride: ptr.Ptr(45),
	})
	require.NoError(t, err)

	offering, err := f.svc.EffectiveOffering(context.Background(), 1, 2, svc.ID)
	require.NoError(t, err)

	assert.Equal(t, 45, offering.DurationMinutes)
	assert.Equal(t, int64(7000), offering.Price)
}

func TestEffectiveOffering_NotLinked(t *testing.T) {
	f := newFixture(t)
	svc := f.seedService(t)

	_, err := f.svc.EffectiveOffering(context.Background(), 1, 2, svc.ID)
	assert.ErrorIs(t, err, ErrServiceNotLinked)
}

func TestEffectiveOffering_InactiveService(t *testing.T) {
	f := newFixture(t)
	svc := f.seedService(t)

	_, err := f.svc.LinkStaffService(context.Background(), &models.LinkStaffServiceRequest{
		BusinessID: 1, StaffID: 2, ServiceID: svc.ID,
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateService(context.Background(), &models.UpdateServiceRequest{
		BusinessID: 1, ServiceID: svc.ID,
		Name: "Haircut", DurationMinutes: 30, Price: 5000, IsActive: false,
	})
	require.NoError(t, err)

	_, err = f.svc.EffectiveOffering(context.Background(), 1, 2, svc.ID)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
