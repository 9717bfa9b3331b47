package request

import "time"

// CreateServiceRequest is the new-listing field set. Ownership and the
// moderation fields are assigned by the server, so any provider_id,
// approval_status or availability_status in the body is ignored.
type CreateServiceRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=200"`
	ServiceType   string   `json:"service_type" validate:"required,max=100"`
	Location      string   `json:"location" validate:"required,max=200"`
	State         string   `json:"state" validate:"required,max=100"`
	PricePerDay   *float64 `json:"price_per_day" validate:"required,gte=0"`
	PriceCurrency *string  `json:"price_currency,omitempty" validate:"omitempty,len=3"`
	Description   *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	DurationDays  *int     `json:"duration_days,omitempty" validate:"omitempty,min=1"`
	MaxGroupSize  *int     `json:"max_group_size,omitempty" validate:"omitempty,min=1"`
	ImageURLs     []string `json:"image_urls,omitempty" validate:"omitempty,dive,url"`
	Includes      []string `json:"includes,omitempty"`
	Excludes      []string `json:"excludes,omitempty"`
}

// UpdateServiceRequest carries only the fields a provider may change.
type UpdateServiceRequest struct {
	Name               *string    `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	ServiceType        *string    `json:"service_type,omitempty" validate:"omitempty,min=1,max=100"`
	Location           *string    `json:"location,omitempty" validate:"omitempty,min=1,max=200"`
	State              *string    `json:"state,omitempty" validate:"omitempty,min=1,max=100"`
	PricePerDay        *float64   `json:"price_per_day,omitempty" validate:"omitempty,gte=0"`
	PriceCurrency      *string    `json:"price_currency,omitempty" validate:"omitempty,len=3"`
	Description        *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	DurationDays       *int       `json:"duration_days,omitempty" validate:"omitempty,min=1"`
	MaxGroupSize       *int       `json:"max_group_size,omitempty" validate:"omitempty,min=1"`
	ImageURLs          *[]string  `json:"image_urls,omitempty" validate:"omitempty,dive,url"`
	Includes           *[]string  `json:"includes,omitempty"`
	Excludes           *[]string  `json:"excludes,omitempty"`
	AvailabilityStatus *string    `json:"availability_status,omitempty" validate:"omitempty,oneof=active inactive"`
	ExpectedUpdatedAt  *time.Time `json:"expected_updated_at,omitempty"`
}
