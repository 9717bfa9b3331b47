package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"pilgrim-provider/internal/data/entity"
	"pilgrim-provider/internal/data/repository"
	"pilgrim-provider/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ptr[T any](v T) *T { return &v }

func newCatalogFixture() (*catalogService, *memServices, *MockProviderRepository) {
	services := newMemServices()
	providers := new(MockProviderRepository)
	repo := &repository.Repository{Service: services, Provider: providers}
	srv := NewCatalogService(repo, zap.NewNop()).(*catalogService)
	return srv, services, providers
}

func validCreateRequest() *request.CreateServiceRequest {
	return &request.CreateServiceRequest{
		Name:        "Char Dham Yatra",
		ServiceType: "tour",
		Location:    "Rishikesh",
		State:       "Uttarakhand",
		PricePerDay: ptr(2500.0),
	}
}

func TestCatalog_CreateService_AssignsOwnerAndModerationFields(t *testing.T) {
	srv, _, providers := newCatalogFixture()
	ctx := context.Background()
	owner := uuid.New()

	providers.On("FindByUserID", mock.Anything, owner).Return(&entity.Provider{UserID: &owner}, nil)

	created, err := srv.CreateService(ctx, owner, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, owner.String(), created.ProviderID)
	assert.Equal(t, entity.ApprovalStatusPending, created.ApprovalStatus)
	assert.Equal(t, entity.AvailabilityActive, created.AvailabilityStatus)

	list, err := srv.ListServices(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	other, err := srv.ListServices(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
	assert.NotNil(t, other)

	providers.AssertExpectations(t)
}

func TestCatalog_CreateService_TimestampsAtStoredPrecision(t *testing.T) {
	srv, services, providers := newCatalogFixture()
	owner := uuid.New()
	srv.now = func() time.Time {
		return time.Date(2026, 4, 2, 10, 15, 30, 123456789, time.FixedZone("IST", 19800))
	}

	providers.On("FindByUserID", mock.Anything, owner).Return(&entity.Provider{UserID: &owner}, nil)

	created, err := srv.CreateService(context.Background(), owner, validCreateRequest())
	require.NoError(t, err)

	want := time.Date(2026, 4, 2, 4, 45, 30, 123456000, time.UTC)
	assert.Equal(t, want, created.CreatedAt)
	assert.Equal(t, want, created.UpdatedAt)

	stored := services.rows[uuid.MustParse(created.ID)]
	require.NotNil(t, stored)
	assert.Equal(t, created.CreatedAt, stored.CreatedAt)
}

func TestCatalog_CreateService_UnregisteredProvider(t *testing.T) {
	srv, services, providers := newCatalogFixture()
	owner := uuid.New()

	providers.On("FindByUserID", mock.Anything, owner).Return(nil, nil)

	created, err := srv.CreateService(context.Background(), owner, validCreateRequest())
	assert.Nil(t, created)
	assert.ErrorIs(t, err, ErrProviderNotRegistered)
	assert.Empty(t, services.rows)
}

func TestCatalog_CreateService_ValidationFailed(t *testing.T) {
	srv, _, providers := newCatalogFixture()

	req := validCreateRequest()
	req.Name = ""
	req.PricePerDay = nil

	_, err := srv.CreateService(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "price_per_day")
	providers.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
}

func TestCatalog_GetService_ForeignAndMissingLookTheSame(t *testing.T) {
	srv, services, _ := newCatalogFixture()
	ctx := context.Background()
	owner, intruder := uuid.New(), uuid.New()

	svc := &entity.Service{Base: entity.Base{ID: uuid.New()}, ProviderID: owner, Name: "Kedarnath trek"}
	require.NoError(t, services.Create(ctx, svc))

	_, foreignErr := srv.GetService(ctx, intruder, svc.ID.String())
	_, missingErr := srv.GetService(ctx, intruder, uuid.NewString())
	_, malformedErr := srv.GetService(ctx, intruder, "not-a-uuid")

	assert.ErrorIs(t, foreignErr, ErrNotFound)
	assert.ErrorIs(t, missingErr, ErrNotFound)
	assert.ErrorIs(t, malformedErr, ErrNotFound)
	assert.Equal(t, foreignErr.Error(), missingErr.Error())

	got, err := srv.GetService(ctx, owner, svc.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Kedarnath trek", got.Name)
}

func TestCatalog_UpdateService(t *testing.T) {
	srv, services, _ := newCatalogFixture()
	ctx := context.Background()
	owner := uuid.New()
	stamp := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	svc := &entity.Service{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: stamp, UpdatedAt: stamp},
		ProviderID:     owner,
		Name:           "Old name",
		ApprovalStatus: entity.ApprovalStatusPending,
	}
	require.NoError(t, services.Create(ctx, svc))

	t.Run("applies only supplied fields", func(t *testing.T) {
		got, err := srv.UpdateService(ctx, owner, svc.ID.String(), &request.UpdateServiceRequest{
			Name: ptr("New name"),
		})
		require.NoError(t, err)
		assert.Equal(t, "New name", got.Name)
		assert.Equal(t, entity.ApprovalStatusPending, got.ApprovalStatus)
	})

	t.Run("foreign owner is not found and row is unchanged", func(t *testing.T) {
		_, err := srv.UpdateService(ctx, uuid.New(), svc.ID.String(), &request.UpdateServiceRequest{
			Name: ptr("Hijacked"),
		})
		assert.ErrorIs(t, err, ErrNotFound)

		current, _ := services.FindByIDForProvider(ctx, svc.ID, owner)
		assert.Equal(t, "New name", current.Name)
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		_, err := srv.UpdateService(ctx, owner, svc.ID.String(), &request.UpdateServiceRequest{})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("stale precondition conflicts", func(t *testing.T) {
		_, err := srv.UpdateService(ctx, owner, svc.ID.String(), &request.UpdateServiceRequest{
			Name:              ptr("Stale"),
			ExpectedUpdatedAt: ptr(stamp),
		})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("fresh precondition applies", func(t *testing.T) {
		current, _ := services.FindByIDForProvider(ctx, svc.ID, owner)
		got, err := srv.UpdateService(ctx, owner, svc.ID.String(), &request.UpdateServiceRequest{
			AvailabilityStatus: ptr("inactive"),
			ExpectedUpdatedAt:  ptr(current.UpdatedAt),
		})
		require.NoError(t, err)
		assert.Equal(t, entity.AvailabilityInactive, got.AvailabilityStatus)
	})
}

func TestCatalog_DeleteService(t *testing.T) {
	srv, services, _ := newCatalogFixture()
	bookings := newMemBookings()
	services.bookings = bookings
	ctx := context.Background()
	owner := uuid.New()

	free := &entity.Service{Base: entity.Base{ID: uuid.New()}, ProviderID: owner}
	booked := &entity.Service{Base: entity.Base{ID: uuid.New()}, ProviderID: owner}
	require.NoError(t, services.Create(ctx, free))
	require.NoError(t, services.Create(ctx, booked))
	bookings.add(&entity.Booking{Base: entity.Base{ID: uuid.New()}, ServiceID: booked.ID, ProviderID: owner})

	err := srv.DeleteService(ctx, uuid.New(), free.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, services.rows, free.ID)

	err = srv.DeleteService(ctx, owner, booked.ID.String())
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, services.rows, booked.ID)

	require.NoError(t, srv.DeleteService(ctx, owner, free.ID.String()))
	assert.NotContains(t, services.rows, free.ID)

	err = srv.DeleteService(ctx, owner, free.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_StoreErrorPropagates(t *testing.T) {
	services := new(MockServiceRepository)
	srv := NewCatalogService(&repository.Repository{Service: services}, zap.NewNop())
	owner := uuid.New()
	storeErr := errors.New("connection reset by peer")

	services.On("FindByProvider", mock.Anything, owner).Return(nil, storeErr)

	_, err := srv.ListServices(context.Background(), owner)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrNotFound)
	services.AssertExpectations(t)
}
