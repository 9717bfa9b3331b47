package request

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// MaxPage keeps (Page-1)*Limit inside the int32 range Postgres accepts for
// OFFSET at any allowed limit.
const MaxPage = math.MaxInt32 / MaxLimit

// PaginatedRequest is a 1-based page of at most Limit rows.
type PaginatedRequest struct {
	Page  int `json:"page" validate:"min=1,max=21474836"`
	Limit int `json:"limit" validate:"min=1,max=100"`
}

// Normalize clamps missing or non-positive values to the defaults and caps
// Limit. An oversized Page is left for validation to reject.
func (p PaginatedRequest) Normalize() PaginatedRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 1 || p.Page > MaxPage {
		return 0
	}
	return (p.Page - 1) * p.Limit
}
