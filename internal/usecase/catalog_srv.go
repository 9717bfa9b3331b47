package usecase

import (
	"context"
	"fmt"
	"time"

	"pilgrim-provider/internal/data/entity"
	"pilgrim-provider/internal/data/repository"
	"pilgrim-provider/internal/dto/request"
	"pilgrim-provider/internal/dto/response"
	"pilgrim-provider/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService is owner-scoped CRUD over a provider's service listings.
type CatalogService interface {
	ListServices(ctx context.Context, providerID uuid.UUID) ([]response.ServiceResponse, error)
	GetService(ctx context.Context, providerID uuid.UUID, serviceID string) (*response.ServiceResponse, error)
	CreateService(ctx context.Context, providerID uuid.UUID, req *request.CreateServiceRequest) (*response.ServiceResponse, error)
	UpdateService(ctx context.Context, providerID uuid.UUID, serviceID string, req *request.UpdateServiceRequest) (*response.ServiceResponse, error)
	DeleteService(ctx context.Context, providerID uuid.UUID, serviceID string) error
}

type catalogService struct {
	services  repository.ServiceRepository
	providers repository.ProviderRepository
	log       *zap.Logger
	now       func() time.Time
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		services:  repo.Service,
		providers: repo.Provider,
		log:       log.With(zap.String("service", "catalog")),
		now:       time.Now,
	}
}

func (s *catalogService) ListServices(ctx context.Context, providerID uuid.UUID) ([]response.ServiceResponse, error) {
	services, err := s.services.FindByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	result := make([]response.ServiceResponse, len(services))
	for i, service := range services {
		result[i] = response.ServiceToResponse(service)
	}

	s.log.Debug("Services listed",
		zap.String("provider_id", providerID.String()),
		zap.Int("count", len(result)),
	)

	return result, nil
}

func (s *catalogService) GetService(ctx context.Context, providerID uuid.UUID, serviceID string) (*response.ServiceResponse, error) {
	id, err := parseResourceID(serviceID, "service")
	if err != nil {
		return nil, err
	}

	service, err := s.services.FindByIDForProvider(ctx, id, providerID)
	if err != nil {
		return nil, fmt.Errorf("get service %s: %w", serviceID, err)
	}
	if service == nil {
		return nil, notFound("service")
	}

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *catalogService) CreateService(ctx context.Context, providerID uuid.UUID, req *request.CreateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create service validation failed", zap.Any("errors", errs))
		return nil, validationError(utils.FormatValidationErrors(errs))
	}

	provider, err := s.providers.FindByUserID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("look up provider: %w", err)
	}
	if provider == nil {
		s.log.Warn("Create service by unregistered provider", zap.String("provider_id", providerID.String()))
		return nil, ErrProviderNotRegistered
	}

	// Postgres keeps microseconds; the response must match what is stored.
	now := s.now().UTC().Truncate(time.Microsecond)
	service := &entity.Service{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ProviderID:         providerID,
		Name:               req.Name,
		ServiceType:        req.ServiceType,
		Location:           req.Location,
		State:              req.State,
		PricePerDay:        req.PricePerDay,
		PriceCurrency:      req.PriceCurrency,
		Description:        req.Description,
		DurationDays:       req.DurationDays,
		MaxGroupSize:       req.MaxGroupSize,
		ImageURLs:          req.ImageURLs,
		Includes:           req.Includes,
		Excludes:           req.Excludes,
		ApprovalStatus:     entity.ApprovalStatusPending,
		AvailabilityStatus: entity.AvailabilityActive,
	}

	if err := s.services.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.log.Info("Service created",
		zap.String("service_id", service.ID.String()),
		zap.String("provider_id", providerID.String()),
		zap.String("name", service.Name),
	)

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *catalogService) UpdateService(ctx context.Context, providerID uuid.UUID, serviceID string, req *request.UpdateServiceRequest) (*response.ServiceResponse, error) {
	id, err := parseResourceID(serviceID, "service")
	if err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update service validation failed", zap.Any("errors", errs))
		return nil, validationError(utils.FormatValidationErrors(errs))
	}

	updates := serviceUpdates(req)
	if len(updates) == 0 {
		return nil, validationError("no updatable fields supplied")
	}

	service, err := s.services.Update(ctx, id, providerID, updates, req.ExpectedUpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update service %s: %w", serviceID, err)
	}

	if service == nil {
		if req.ExpectedUpdatedAt == nil {
			return nil, notFound("service")
		}
		// distinguish a stale precondition from a missing row
		current, err := s.services.FindByIDForProvider(ctx, id, providerID)
		if err != nil {
			return nil, fmt.Errorf("update service %s: %w", serviceID, err)
		}
		if current == nil {
			return nil, notFound("service")
		}
		return nil, conflictError("service was modified since expected_updated_at")
	}

	s.log.Info("Service updated",
		zap.String("service_id", serviceID),
		zap.String("provider_id", providerID.String()),
		zap.Int("fields", len(updates)),
	)

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *catalogService) DeleteService(ctx context.Context, providerID uuid.UUID, serviceID string) error {
	id, err := parseResourceID(serviceID, "service")
	if err != nil {
		return err
	}

	deleted, err := s.services.Delete(ctx, id, providerID)
	if err != nil {
		return fmt.Errorf("delete service %s: %w", serviceID, err)
	}

	if !deleted {
		current, err := s.services.FindByIDForProvider(ctx, id, providerID)
		if err != nil {
			return fmt.Errorf("delete service %s: %w", serviceID, err)
		}
		if current == nil {
			return notFound("service")
		}
		return conflictError("service has bookings and cannot be deleted")
	}

	s.log.Info("Service deleted",
		zap.String("service_id", serviceID),
		zap.String("provider_id", providerID.String()),
	)

	return nil
}

// serviceUpdates maps the set fields of req onto their columns.
func serviceUpdates(req *request.UpdateServiceRequest) []repository.FieldUpdate {
	var updates []repository.FieldUpdate
	updates = setIf(updates, "name", req.Name)
	updates = setIf(updates, "service_type", req.ServiceType)
	updates = setIf(updates, "location", req.Location)
	updates = setIf(updates, "state", req.State)
	updates = setIf(updates, "price_per_day", req.PricePerDay)
	updates = setIf(updates, "price_currency", req.PriceCurrency)
	updates = setIf(updates, "description", req.Description)
	updates = setIf(updates, "duration_days", req.DurationDays)
	updates = setIf(updates, "max_group_size", req.MaxGroupSize)
	updates = setIf(updates, "image_urls", req.ImageURLs)
	updates = setIf(updates, "includes", req.Includes)
	updates = setIf(updates, "excludes", req.Excludes)
	updates = setIf(updates, "availability_status", req.AvailabilityStatus)
	return updates
}

func setIf[T any](updates []repository.FieldUpdate, column string, v *T) []repository.FieldUpdate {
	if v == nil {
		return updates
	}
	return append(updates, repository.FieldUpdate{Column: column, Value: *v})
}
