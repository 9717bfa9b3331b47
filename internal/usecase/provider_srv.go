package usecase

import (
	"context"
	"fmt"

	"pilgrim-provider/internal/data/repository"
	"pilgrim-provider/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProviderService interface {
	GetProviderProfile(ctx context.Context, userID uuid.UUID) (*response.ProviderProfileResponse, error)
}

type providerService struct {
	providers repository.ProviderRepository
	profiles  repository.ProfileRepository
	documents repository.DocumentRepository
	log       *zap.Logger
}

func NewProviderService(repo *repository.Repository, log *zap.Logger) ProviderService {
	return &providerService{
		providers: repo.Provider,
		profiles:  repo.Profile,
		documents: repo.Document,
		log:       log.With(zap.String("service", "provider")),
	}
}

func (s *providerService) GetProviderProfile(ctx context.Context, userID uuid.UUID) (*response.ProviderProfileResponse, error) {
	provider, err := s.providers.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get provider: %w", err)
	}
	if provider == nil {
		return nil, notFound("provider profile")
	}

	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	documents, err := s.documents.FindByProviderID(ctx, provider.ID)
	if err != nil {
		return nil, fmt.Errorf("get provider documents: %w", err)
	}

	docs := make([]response.DocumentResponse, len(documents))
	for i, d := range documents {
		docs[i] = response.DocumentToResponse(d)
	}

	return &response.ProviderProfileResponse{
		Provider:  response.ProviderToResponse(provider),
		Profile:   response.ProfileToResponse(profile),
		Documents: docs,
	}, nil
}
