package response

import (
	"time"

	"pilgrim-provider/internal/data/entity"
)

type ProviderResponse struct {
	ID                 string                    `json:"id"`
	UserID             *string                   `json:"user_id"`
	BusinessName       string                    `json:"business_name"`
	BusinessType       string                    `json:"business_type"`
	ContactPerson      string                    `json:"contact_person"`
	Email              string                    `json:"email"`
	Phone              string                    `json:"phone"`
	Address            string                    `json:"address"`
	City               string                    `json:"city"`
	State              string                    `json:"state"`
	Pincode            string                    `json:"pincode"`
	Description        *string                   `json:"description"`
	ExperienceYears    *int                      `json:"experience_years"`
	WebsiteURL         *string                   `json:"website_url"`
	Services           []string                  `json:"services"`
	VerificationStatus entity.VerificationStatus `json:"verification_status"`
	CreatedAt          time.Time                 `json:"created_at"`
	UpdatedAt          time.Time                 `json:"updated_at"`
}

type DocumentResponse struct {
	ID                 string                    `json:"id"`
	DocumentType       string                    `json:"document_type"`
	FileName           string                    `json:"file_name"`
	FileURL            string                    `json:"file_url"`
	FileSize           *int64                    `json:"file_size"`
	VerificationStatus entity.VerificationStatus `json:"verification_status"`
	RejectionReason    *string                   `json:"rejection_reason"`
	UploadedAt         time.Time                 `json:"uploaded_at"`
	VerifiedAt         *time.Time                `json:"verified_at"`
}

type ProfileResponse struct {
	UserID      string           `json:"user_id"`
	Role        *entity.UserRole `json:"role"`
	DisplayName *string          `json:"display_name"`
	State       *string          `json:"state"`
	AvatarURL   *string          `json:"avatar_url"`
}

type ProviderProfileResponse struct {
	Provider  ProviderResponse   `json:"provider"`
	Profile   *ProfileResponse   `json:"profile"`
	Documents []DocumentResponse `json:"documents"`
}

func ProviderToResponse(p *entity.Provider) ProviderResponse {
	var userID *string
	if p.UserID != nil {
		s := p.UserID.String()
		userID = &s
	}

	return ProviderResponse{
		ID:                 p.ID.String(),
		UserID:             userID,
		BusinessName:       p.BusinessName,
		BusinessType:       p.BusinessType,
		ContactPerson:      p.ContactPerson,
		Email:              p.Email,
		Phone:              p.Phone,
		Address:            p.Address,
		City:               p.City,
		State:              p.State,
		Pincode:            p.Pincode,
		Description:        p.Description,
		ExperienceYears:    p.ExperienceYears,
		WebsiteURL:         p.WebsiteURL,
		Services:           p.Services,
		VerificationStatus: p.VerificationStatus,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func DocumentToResponse(d *entity.ProviderDocument) DocumentResponse {
	return DocumentResponse{
		ID:                 d.ID.String(),
		DocumentType:       d.DocumentType,
		FileName:           d.FileName,
		FileURL:            d.FileURL,
		FileSize:           d.FileSize,
		VerificationStatus: d.VerificationStatus,
		RejectionReason:    d.RejectionReason,
		UploadedAt:         d.UploadedAt,
		VerifiedAt:         d.VerifiedAt,
	}
}

func ProfileToResponse(p *entity.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}
	return &ProfileResponse{
		UserID:      p.UserID.String(),
		Role:        p.Role,
		DisplayName: p.DisplayName,
		State:       p.State,
		AvatarURL:   p.AvatarURL,
	}
}
