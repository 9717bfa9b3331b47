package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pilgrim-provider/internal/data/entity"
	"pilgrim-provider/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	FindByIDForProvider(ctx context.Context, id, providerID uuid.UUID) (*entity.Service, error)
	FindByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Service, error)
	Update(ctx context.Context, id, providerID uuid.UUID, updates []FieldUpdate, expectedUpdatedAt *time.Time) (*entity.Service, error)
	Delete(ctx context.Context, id, providerID uuid.UUID) (bool, error)

	// Aggregates
	CountByProvider(ctx context.Context, providerID uuid.UUID, approval *entity.ApprovalStatus) (int64, error)
}

// serviceMutableColumns lists what an owning provider may overwrite.
// approval_status belongs to the moderation flow and is not here.
var serviceMutableColumns = map[string]bool{
	"name":                true,
	"service_type":        true,
	"location":            true,
	"state":               true,
	"price_per_day":       true,
	"price_currency":      true,
	"description":         true,
	"duration_days":       true,
	"max_group_size":      true,
	"image_urls":          true,
	"includes":            true,
	"excludes":            true,
	"availability_status": true,
}

const serviceColumns = `id, provider_id, name, service_type, location, state,
		price_per_day, price_currency, description, duration_days, max_group_size,
		image_urls, includes, excludes,
		COALESCE(approval_status, 'pending'), COALESCE(availability_status, 'active'),
		created_at, updated_at`

type serviceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceRepository(db database.PgxIface, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		db:  db,
		log: log.With(zap.String("repository", "service")),
	}
}

func scanService(row rowScanner) (*entity.Service, error) {
	var s entity.Service
	err := row.Scan(
		&s.ID,
		&s.ProviderID,
		&s.Name,
		&s.ServiceType,
		&s.Location,
		&s.State,
		&s.PricePerDay,
		&s.PriceCurrency,
		&s.Description,
		&s.DurationDays,
		&s.MaxGroupSize,
		&s.ImageURLs,
		&s.Includes,
		&s.Excludes,
		&s.ApprovalStatus,
		&s.AvailabilityStatus,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	query := `
		INSERT INTO services (id, provider_id, name, service_type, location, state,
		                      price_per_day, price_currency, description, duration_days, max_group_size,
		                      image_urls, includes, excludes, approval_status, availability_status,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.db.Exec(ctx, query,
		service.ID,
		service.ProviderID,
		service.Name,
		service.ServiceType,
		service.Location,
		service.State,
		service.PricePerDay,
		service.PriceCurrency,
		service.Description,
		service.DurationDays,
		service.MaxGroupSize,
		service.ImageURLs,
		service.Includes,
		service.Excludes,
		service.ApprovalStatus,
		service.AvailabilityStatus,
		service.CreatedAt,
		service.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create service",
			zap.Error(err),
			zap.String("name", service.Name),
			zap.String("provider_id", service.ProviderID.String()),
		)
		return fmt.Errorf("create service %s: %w", service.Name, err)
	}

	return nil
}

func (r *serviceRepository) FindByIDForProvider(ctx context.Context, id, providerID uuid.UUID) (*entity.Service, error) {
	query := `SELECT ` + serviceColumns + `
		FROM services
		WHERE id = $1 AND provider_id = $2
	`

	service, err := scanService(r.db.QueryRow(ctx, query, id, providerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service by ID",
			zap.Error(err),
			zap.String("service_id", id.String()),
			zap.String("provider_id", providerID.String()),
		)
		return nil, fmt.Errorf("find service by ID %s: %w", id.String(), err)
	}

	return service, nil
}

func (r *serviceRepository) FindByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + `
		FROM services
		WHERE provider_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, providerID)
	if err != nil {
		r.log.Error("Failed to find services by provider",
			zap.Error(err),
			zap.String("provider_id", providerID.String()),
		)
		return nil, fmt.Errorf("find services by provider %s: %w", providerID.String(), err)
	}
	defer rows.Close()

	services := []*entity.Service{}
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			r.log.Error("Failed to scan service row", zap.Error(err))
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, service)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate service rows: %w", err)
	}

	return services, nil
}

// Update returns nil, nil when no owned row (or no row at the expected
// updated_at) matched.
func (r *serviceRepository) Update(ctx context.Context, id, providerID uuid.UUID, updates []FieldUpdate, expectedUpdatedAt *time.Time) (*entity.Service, error) {
	b := newUpdate("services")
	if err := applyUpdates(b, serviceMutableColumns, updates); err != nil {
		return nil, err
	}
	b.Set("updated_at", time.Now().UTC())
	b.Where("id = %s", id)
	b.Where("provider_id = %s", providerID)
	if expectedUpdatedAt != nil {
		b.Where("updated_at = %s", *expectedUpdatedAt)
	}

	service, err := scanService(r.db.QueryRow(ctx, b.SQL(serviceColumns), b.Args()...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update service",
			zap.Error(err),
			zap.String("service_id", id.String()),
			zap.String("provider_id", providerID.String()),
		)
		return nil, fmt.Errorf("update service %s: %w", id.String(), err)
	}

	return service, nil
}

// Delete removes an owned service that no booking references. It reports
// false when nothing was removed.
func (r *serviceRepository) Delete(ctx context.Context, id, providerID uuid.UUID) (bool, error) {
	query := `
		DELETE FROM services
		WHERE id = $1 AND provider_id = $2
		  AND NOT EXISTS (SELECT 1 FROM bookings WHERE service_id = $1)
	`

	result, err := r.db.Exec(ctx, query, id, providerID)
	if err != nil {
		r.log.Error("Failed to delete service",
			zap.Error(err),
			zap.String("service_id", id.String()),
			zap.String("provider_id", providerID.String()),
		)
		return false, fmt.Errorf("delete service %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	r.log.Info("Service deleted", zap.String("service_id", id.String()))
	return true, nil
}

func (r *serviceRepository) CountByProvider(ctx context.Context, providerID uuid.UUID, approval *entity.ApprovalStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM services WHERE provider_id = $1`
	args := []any{providerID}
	if approval != nil {
		query += ` AND COALESCE(approval_status, 'pending') = $2`
		args = append(args, string(*approval))
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count services",
			zap.Error(err),
			zap.String("provider_id", providerID.String()),
		)
		return 0, fmt.Errorf("count services by provider %s: %w", providerID.String(), err)
	}

	return count, nil
}
