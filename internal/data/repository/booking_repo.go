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

type BookingRepository interface {
	FindByIDForProvider(ctx context.Context, id, providerID uuid.UUID) (*entity.BookingWithService, error)
	FindByProvider(ctx context.Context, providerID uuid.UUID, status *entity.BookingStatus, limit, offset int) ([]*entity.BookingWithService, error)
	CountByProvider(ctx context.Context, providerID uuid.UUID, status *entity.BookingStatus) (int64, error)
	// FindPageByProvider reads a page and its total from one snapshot.
	FindPageByProvider(ctx context.Context, providerID uuid.UUID, status *entity.BookingStatus, limit, offset int) ([]*entity.BookingWithService, int64, error)
	Update(ctx context.Context, id, providerID uuid.UUID, updates []FieldUpdate, opts BookingUpdateOptions) (*entity.Booking, error)

	// Aggregates
	SumRevenueByProvider(ctx context.Context, providerID uuid.UUID) (float64, error)
}

// BookingUpdateOptions narrows which rows an update may hit.
type BookingUpdateOptions struct {
	// FromStatuses, when set, restricts the update to bookings currently
	// in one of these statuses.
	FromStatuses      []entity.BookingStatus
	ExpectedUpdatedAt *time.Time
}

var bookingMutableColumns = map[string]bool{
	"booking_status":   true,
	"payment_status":   true,
	"special_requests": true,
}

const bookingColumns = `id, service_id, provider_id, traveler_id, booking_date, start_date, end_date,
		group_size, COALESCE(total_amount, 0), currency,
		COALESCE(booking_status, 'pending'), COALESCE(payment_status, 'unpaid'),
		contact_email, contact_phone, special_requests, created_at, updated_at`

const bookingWithServiceColumns = `b.id, b.service_id, b.provider_id, b.traveler_id, b.booking_date, b.start_date, b.end_date,
		b.group_size, COALESCE(b.total_amount, 0), b.currency,
		COALESCE(b.booking_status, 'pending'), COALESCE(b.payment_status, 'unpaid'),
		b.contact_email, b.contact_phone, b.special_requests, b.created_at, b.updated_at,
		COALESCE(s.name, ''), COALESCE(s.location, ''), COALESCE(s.service_type, '')`

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func bookingDest(b *entity.Booking) []any {
	return []any{
		&b.ID,
		&b.ServiceID,
		&b.ProviderID,
		&b.TravelerID,
		&b.BookingDate,
		&b.StartDate,
		&b.EndDate,
		&b.GroupSize,
		&b.TotalAmount,
		&b.Currency,
		&b.BookingStatus,
		&b.PaymentStatus,
		&b.ContactEmail,
		&b.ContactPhone,
		&b.SpecialRequests,
		&b.CreatedAt,
		&b.UpdatedAt,
	}
}

func scanBookingWithService(row rowScanner) (*entity.BookingWithService, error) {
	var b entity.BookingWithService
	dest := append(bookingDest(&b.Booking), &b.Service.Name, &b.Service.Location, &b.Service.ServiceType)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &b, nil
}

// bookingFilter renders the shared WHERE clause so a page and its total
// always use the same predicate.
func bookingFilter(providerID uuid.UUID, status *entity.BookingStatus) (string, []any) {
	where := "b.provider_id = $1"
	args := []any{providerID}
	if status != nil {
		args = append(args, string(*status))
		where += fmt.Sprintf(" AND COALESCE(b.booking_status, 'pending') = $%d", len(args))
	}
	return where, args
}

func (r *bookingRepository) FindByIDForProvider(ctx context.Context, id, providerID uuid.UUID) (*entity.BookingWithService, error) {
	query := `SELECT ` + bookingWithServiceColumns + `
		FROM bookings b
		LEFT JOIN services s ON s.id = b.service_id
		WHERE b.id = $1 AND b.provider_id = $2
	`

	booking, err := scanBookingWithService(r.db.QueryRow(ctx, query, id, providerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("provider_id", providerID.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByProvider(ctx context.Context, providerID uuid.UUID, status *entity.BookingStatus, limit, offset int) ([]*entity.BookingWithService, error) {
	return r.findByProvider(ctx, r.db, providerID, status, limit, offset)
}

func (r *bookingRepository) CountByProvider(ctx context.Context, providerID uuid.UUID, status *entity.BookingStatus) (int64, error) {
	return r.countByProvider(ctx, r.db, providerID, status)
}

var pageTxOptions = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

func (r *bookingRepository) FindPageByProvider(ctx context.Context, providerID uuid.UUID, status *entity.BookingStatus, limit, offset int) (bookings []*entity.BookingWithService, total int64, err error) {
	tx, err := r.db.BeginTx(ctx, pageTxOptions)
	if err != nil {
		r.log.Error("Failed to begin booking page transaction", zap.Error(err))
		return nil, 0, fmt.Errorf("begin booking page: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	bookings, err = r.findByProvider(ctx, tx, providerID, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err = r.countByProvider(ctx, tx, providerID, status)
	if err != nil {
		return nil, 0, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, 0, fmt.Errorf("commit booking page: %w", err)
	}

	return bookings, total, nil
}

func (r *bookingRepository) findByProvider(ctx context.Context, q querier, providerID uuid.UUID, status *entity.BookingStatus, limit, offset int) ([]*entity.BookingWithService, error) {
	where, args := bookingFilter(providerID, status)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s
		FROM bookings b
		LEFT JOIN services s ON s.id = b.service_id
		WHERE %s
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $%d OFFSET $%d
	`, bookingWithServiceColumns, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find bookings by provider",
			zap.Error(err),
			zap.String("provider_id", providerID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by provider %s: %w", providerID.String(), err)
	}
	defer rows.Close()

	bookings := []*entity.BookingWithService{}
	for rows.Next() {
		booking, err := scanBookingWithService(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) countByProvider(ctx context.Context, q querier, providerID uuid.UUID, status *entity.BookingStatus) (int64, error) {
	where, args := bookingFilter(providerID, status)
	query := `SELECT COUNT(*) FROM bookings b WHERE ` + where

	var count int64
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings",
			zap.Error(err),
			zap.String("provider_id", providerID.String()),
		)
		return 0, fmt.Errorf("count bookings by provider %s: %w", providerID.String(), err)
	}

	return count, nil
}

// Update returns nil, nil when no row matched id, owner and the options.
func (r *bookingRepository) Update(ctx context.Context, id, providerID uuid.UUID, updates []FieldUpdate, opts BookingUpdateOptions) (*entity.Booking, error) {
	b := newUpdate("bookings")
	if err := applyUpdates(b, bookingMutableColumns, updates); err != nil {
		return nil, err
	}
	b.Set("updated_at", time.Now().UTC())
	b.Where("id = %s", id)
	b.Where("provider_id = %s", providerID)
	if len(opts.FromStatuses) > 0 {
		from := make([]string, len(opts.FromStatuses))
		for i, s := range opts.FromStatuses {
			from[i] = string(s)
		}
		b.Where("COALESCE(booking_status, 'pending') = ANY(%s)", from)
	}
	if opts.ExpectedUpdatedAt != nil {
		b.Where("updated_at = %s", *opts.ExpectedUpdatedAt)
	}

	var booking entity.Booking
	err := r.db.QueryRow(ctx, b.SQL(bookingColumns), b.Args()...).Scan(bookingDest(&booking)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("provider_id", providerID.String()),
		)
		return nil, fmt.Errorf("update booking %s: %w", id.String(), err)
	}

	return &booking, nil
}

// SumRevenueByProvider totals completed, paid bookings. NULL amounts count
// as zero and an empty set sums to zero.
func (r *bookingRepository) SumRevenueByProvider(ctx context.Context, providerID uuid.UUID) (float64, error) {
	query := `
		SELECT COALESCE(SUM(COALESCE(total_amount, 0)), 0)::float8
		FROM bookings
		WHERE provider_id = $1
		  AND booking_status = $2
		  AND payment_status = $3
	`

	var total float64
	err := r.db.QueryRow(ctx, query,
		providerID,
		string(entity.BookingStatusCompleted),
		string(entity.PaymentStatusPaid),
	).Scan(&total)
	if err != nil {
		r.log.Error("Failed to sum booking revenue",
			zap.Error(err),
			zap.String("provider_id", providerID.String()),
		)
		return 0, fmt.Errorf("sum revenue by provider %s: %w", providerID.String(), err)
	}

	return total, nil
}
