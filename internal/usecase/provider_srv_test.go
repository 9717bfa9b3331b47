package usecase

import (
	"context"
	"testing"

	"pilgrim-provider/internal/data/entity"
	"pilgrim-provider/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProvider_GetProviderProfile(t *testing.T) {
	providers := new(MockProviderRepository)
	profiles := new(MockProfileRepository)
	documents := new(MockDocumentRepository)
	srv := NewProviderService(&repository.Repository{
		Provider: providers,
		Profile:  profiles,
		Document: documents,
	}, zap.NewNop())

	userID := uuid.New()
	provider := &entity.Provider{Base: entity.Base{ID: uuid.New()}, UserID: &userID, BusinessName: "Ganga Tours"}

	providers.On("FindByUserID", mock.Anything, userID).Return(provider, nil)
	profiles.On("FindByUserID", mock.Anything, userID).Return(nil, nil)
	documents.On("FindByProviderID", mock.Anything, provider.ID).Return([]*entity.ProviderDocument{
		{Base: entity.Base{ID: uuid.New()}, ProviderID: provider.ID, DocumentType: "gst_certificate"},
	}, nil)

	got, err := srv.GetProviderProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Ganga Tours", got.Provider.BusinessName)
	assert.Nil(t, got.Profile)
	require.Len(t, got.Documents, 1)
	assert.Equal(t, "gst_certificate", got.Documents[0].DocumentType)

	providers.AssertExpectations(t)
	profiles.AssertExpectations(t)
	documents.AssertExpectations(t)
}

func TestProvider_GetProviderProfile_NotRegistered(t *testing.T) {
	providers := new(MockProviderRepository)
	srv := NewProviderService(&repository.Repository{Provider: providers}, zap.NewNop())
	userID := uuid.New()

	providers.On("FindByUserID", mock.Anything, userID).Return(nil, nil)

	_, err := srv.GetProviderProfile(context.Background(), userID)
	assert.ErrorIs(t, err, ErrNotFound)
}
