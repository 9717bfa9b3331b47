package repository

import (
	"context"

	"pilgrim-provider/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Repository groups the store accessors. Every provider-owned lookup takes
// the owner id as a required argument and folds it into its predicate.
type Repository struct {
	Service  ServiceRepository
	Booking  BookingRepository
	Provider ProviderRepository
	Document DocumentRepository
	Profile  ProfileRepository
	DB       database.PgxIface
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Service:  NewServiceRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Provider: NewProviderRepository(db, log),
		Document: NewDocumentRepository(db, log),
		Profile:  NewProfileRepository(db, log),
		DB:       db,
	}
}

// querier is the read surface shared by the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
