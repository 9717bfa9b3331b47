package entity

import (
	"time"

	"github.com/google/uuid"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// Provider is the business record owned by one user identity.
type Provider struct {
	Base
	UserID             *uuid.UUID         `db:"user_id"`
	BusinessName       string             `db:"business_name"`
	BusinessType       string             `db:"business_type"`
	ContactPerson      string             `db:"contact_person"`
	Email              string             `db:"email"`
	Phone              string             `db:"phone"`
	Address            string             `db:"address"`
	City               string             `db:"city"`
	State              string             `db:"state"`
	Pincode            string             `db:"pincode"`
	Description        *string            `db:"description"`
	ExperienceYears    *int               `db:"experience_years"`
	WebsiteURL         *string            `db:"website_url"`
	Services           []string           `db:"services"`
	VerificationStatus VerificationStatus `db:"verification_status"`
}

type ProviderDocument struct {
	Base
	ProviderID         uuid.UUID          `db:"provider_id"`
	DocumentType       string             `db:"document_type"`
	FileName           string             `db:"file_name"`
	FileURL            string             `db:"file_url"`
	FileSize           *int64             `db:"file_size"`
	VerificationStatus VerificationStatus `db:"verification_status"`
	RejectionReason    *string            `db:"rejection_reason"`
	UploadedAt         time.Time          `db:"uploaded_at"`
	VerifiedAt         *time.Time         `db:"verified_at"`
}
