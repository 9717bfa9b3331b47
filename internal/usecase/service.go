package usecase

import (
	"pilgrim-provider/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Catalog  CatalogService
	Booking  BookingService
	Stats    StatsService
	Provider ProviderService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Catalog:  NewCatalogService(repo, log),
		Booking:  NewBookingService(repo.Booking, log),
		Stats:    NewStatsService(repo, log),
		Provider: NewProviderService(repo, log),
	}
}
