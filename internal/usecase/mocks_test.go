package usecase

import (
	"context"
	"time"

	"pilgrim-provider/internal/data/entity"
	"pilgrim-provider/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Provider, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Provider), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*entity.ProviderDocument, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ProviderDocument), args.Error(1)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, s *entity.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServiceRepository) FindByIDForProvider(ctx context.Context, id, providerID uuid.UUID) (*entity.Service, error) {
	args := m.Called(ctx, id, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Service), args.Error(1)
}

func (m *MockServiceRepository) FindByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Service, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Service), args.Error(1)
}

func (m *MockServiceRepository) Update(ctx context.Context, id, providerID uuid.UUID, updates []repository.FieldUpdate, expected *time.Time) (*entity.Service, error) {
	args := m.Called(ctx, id, providerID, updates, expected)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Service), args.Error(1)
}

func (m *MockServiceRepository) Delete(ctx context.Context, id, providerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, providerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockServiceRepository) CountByProvider(ctx context.Context, providerID uuid.UUID, approval *entity.ApprovalStatus) (int64, error) {
	args := m.Called(ctx, providerID, approval)
	return args.Get(0).(int64), args.Error(1)
}
