package repository

import (
	"context"
	"fmt"

	"pilgrim-provider/internal/data/entity"
	"pilgrim-provider/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DocumentRepository interface {
	FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*entity.ProviderDocument, error)
}

type documentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDocumentRepository(db database.PgxIface, log *zap.Logger) DocumentRepository {
	return &documentRepository{
		db:  db,
		log: log.With(zap.String("repository", "provider_document")),
	}
}

func (r *documentRepository) FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*entity.ProviderDocument, error) {
	query := `
		SELECT id, provider_id, document_type, file_name, file_url, file_size,
		       COALESCE(verification_status, 'pending'), rejection_reason,
		       uploaded_at, verified_at, created_at, updated_at
		FROM provider_documents
		WHERE provider_id = $1
		ORDER BY uploaded_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, providerID)
	if err != nil {
		r.log.Error("Failed to find provider documents",
			zap.Error(err),
			zap.String("provider_id", providerID.String()),
		)
		return nil, fmt.Errorf("find documents by provider %s: %w", providerID.String(), err)
	}
	defer rows.Close()

	documents := []*entity.ProviderDocument{}
	for rows.Next() {
		var d entity.ProviderDocument
		err := rows.Scan(
			&d.ID,
			&d.ProviderID,
			&d.DocumentType,
			&d.FileName,
			&d.FileURL,
			&d.FileSize,
			&d.VerificationStatus,
			&d.RejectionReason,
			&d.UploadedAt,
			&d.VerifiedAt,
			&d.CreatedAt,
			&d.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan document row", zap.Error(err))
			return nil, fmt.Errorf("scan document row: %w", err)
		}
		documents = append(documents, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate document rows: %w", err)
	}

	return documents, nil
}
