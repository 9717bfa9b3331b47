package entity

import (
	"github.com/google/uuid"
)

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

type AvailabilityStatus string

const (
	AvailabilityActive          AvailabilityStatus = "active"
	AvailabilityInactive        AvailabilityStatus = "inactive"
	AvailabilityPendingApproval AvailabilityStatus = "pending_approval"
)

// Service is a bookable offering. ProviderID is the owning principal.
type Service struct {
	Base
	ProviderID         uuid.UUID          `db:"provider_id"`
	Name               string             `db:"name"`
	ServiceType        string             `db:"service_type"`
	Location           string             `db:"location"`
	State              string             `db:"state"`
	PricePerDay        *float64           `db:"price_per_day"`
	PriceCurrency      *string            `db:"price_currency"`
	Description        *string            `db:"description"`
	DurationDays       *int               `db:"duration_days"`
	MaxGroupSize       *int               `db:"max_group_size"`
	ImageURLs          []string           `db:"image_urls"`
	Includes           []string           `db:"includes"`
	Excludes           []string           `db:"excludes"`
	ApprovalStatus     ApprovalStatus     `db:"approval_status"`
	AvailabilityStatus AvailabilityStatus `db:"availability_status"`
}
