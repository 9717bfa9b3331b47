package repository

import (
	"context"
	"errors"
	"fmt"

	"pilgrim-provider/internal/data/entity"
	"pilgrim-provider/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProviderRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Provider, error)
}

type providerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProviderRepository(db database.PgxIface, log *zap.Logger) ProviderRepository {
	return &providerRepository{
		db:  db,
		log: log.With(zap.String("repository", "provider")),
	}
}

func (r *providerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Provider, error) {
	query := `
		SELECT id, user_id, business_name, business_type, contact_person, email, phone,
		       address, city, state, pincode, description, experience_years, website_url,
		       services, COALESCE(verification_status, 'pending'), created_at, updated_at
		FROM providers
		WHERE user_id = $1
		ORDER BY created_at
		LIMIT 1
	`

	var p entity.Provider
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.BusinessName,
		&p.BusinessType,
		&p.ContactPerson,
		&p.Email,
		&p.Phone,
		&p.Address,
		&p.City,
		&p.State,
		&p.Pincode,
		&p.Description,
		&p.ExperienceYears,
		&p.WebsiteURL,
		&p.Services,
		&p.VerificationStatus,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find provider by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find provider by user ID %s: %w", userID.String(), err)
	}

	return &p, nil
}
