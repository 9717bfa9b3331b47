package usecase

import (
	"context"
	"fmt"

	"pilgrim-provider/internal/data/entity"
	"pilgrim-provider/internal/data/repository"
	"pilgrim-provider/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const recentBookingsLimit = 10

type StatsService interface {
	GetProviderStats(ctx context.Context, providerID uuid.UUID) (*response.ProviderStatsResponse, error)
}

type statsService struct {
	services repository.ServiceRepository
	bookings repository.BookingRepository
	log      *zap.Logger
}

func NewStatsService(repo *repository.Repository, log *zap.Logger) StatsService {
	return &statsService{
		services: repo.Service,
		bookings: repo.Booking,
		log:      log.With(zap.String("service", "stats")),
	}
}

// GetProviderStats runs the dashboard queries concurrently. The first
// failure cancels the rest and no partial summary is returned.
func (s *statsService) GetProviderStats(ctx context.Context, providerID uuid.UUID) (*response.ProviderStatsResponse, error) {
	var (
		stats  response.ProviderStatsResponse
		recent []*entity.BookingWithService
	)

	pending := entity.ApprovalStatusPending
	confirmed := entity.BookingStatusConfirmed

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.services.CountByProvider(gctx, providerID, nil)
		if err != nil {
			return fmt.Errorf("count services: %w", err)
		}
		stats.TotalServices = n
		return nil
	})

	g.Go(func() error {
		n, err := s.services.CountByProvider(gctx, providerID, &pending)
		if err != nil {
			return fmt.Errorf("count pending services: %w", err)
		}
		stats.PendingApproval = n
		return nil
	})

	g.Go(func() error {
		n, err := s.bookings.CountByProvider(gctx, providerID, nil)
		if err != nil {
			return fmt.Errorf("count bookings: %w", err)
		}
		stats.TotalBookings = n
		return nil
	})

	g.Go(func() error {
		n, err := s.bookings.CountByProvider(gctx, providerID, &confirmed)
		if err != nil {
			return fmt.Errorf("count confirmed bookings: %w", err)
		}
		stats.ConfirmedBookings = n
		return nil
	})

	g.Go(func() error {
		total, err := s.bookings.SumRevenueByProvider(gctx, providerID)
		if err != nil {
			return fmt.Errorf("sum revenue: %w", err)
		}
		stats.TotalRevenue = total
		return nil
	})

	g.Go(func() error {
		rows, err := s.bookings.FindByProvider(gctx, providerID, nil, recentBookingsLimit, 0)
		if err != nil {
			return fmt.Errorf("recent bookings: %w", err)
		}
		recent = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.Error("Failed to aggregate provider stats",
			zap.Error(err),
			zap.String("provider_id", providerID.String()),
		)
		return nil, fmt.Errorf("%w: %w", ErrAggregation, err)
	}

	stats.RecentBookings = make([]response.RecentBookingResponse, len(recent))
	for i, booking := range recent {
		stats.RecentBookings[i] = response.RecentBookingToResponse(booking)
	}

	s.log.Info("Provider stats calculated",
		zap.String("provider_id", providerID.String()),
		zap.Int64("total_services", stats.TotalServices),
		zap.Int64("total_bookings", stats.TotalBookings),
		zap.Float64("total_revenue", stats.TotalRevenue),
	)

	return &stats, nil
}
