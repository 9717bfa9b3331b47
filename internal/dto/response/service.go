package response

import (
	"time"

	"pilgrim-provider/internal/data/entity"
)

type ServiceResponse struct {
	ID                 string                    `json:"id"`
	ProviderID         string                    `json:"provider_id"`
	Name               string                    `json:"name"`
	ServiceType        string                    `json:"service_type"`
	Location           string                    `json:"location"`
	State              string                    `json:"state"`
	PricePerDay        *float64                  `json:"price_per_day"`
	PriceCurrency      *string                   `json:"price_currency"`
	Description        *string                   `json:"description"`
	DurationDays       *int                      `json:"duration_days"`
	MaxGroupSize       *int                      `json:"max_group_size"`
	ImageURLs          []string                  `json:"image_urls"`
	Includes           []string                  `json:"includes"`
	Excludes           []string                  `json:"excludes"`
	ApprovalStatus     entity.ApprovalStatus     `json:"approval_status"`
	AvailabilityStatus entity.AvailabilityStatus `json:"availability_status"`
	CreatedAt          time.Time                 `json:"created_at"`
	UpdatedAt          time.Time                 `json:"updated_at"`
}

func ServiceToResponse(s *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:                 s.ID.String(),
		ProviderID:         s.ProviderID.String(),
		Name:               s.Name,
		ServiceType:        s.ServiceType,
		Location:           s.Location,
		State:              s.State,
		PricePerDay:        s.PricePerDay,
		PriceCurrency:      s.PriceCurrency,
		Description:        s.Description,
		DurationDays:       s.DurationDays,
		MaxGroupSize:       s.MaxGroupSize,
		ImageURLs:          s.ImageURLs,
		Includes:           s.Includes,
		Excludes:           s.Excludes,
		ApprovalStatus:     s.ApprovalStatus,
		AvailabilityStatus: s.AvailabilityStatus,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

type DeleteResponse struct {
	Success bool `json:"success"`
}
