package request

import "time"

type ListBookingsRequest struct {
	PaginatedRequest
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed completed cancelled"`
}

type UpdateBookingRequest struct {
	BookingStatus     *string    `json:"booking_status,omitempty" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	PaymentStatus     *string    `json:"payment_status,omitempty" validate:"omitempty,oneof=unpaid paid refunded"`
	SpecialRequests   *string    `json:"special_requests,omitempty" validate:"omitempty,max=2000"`
	ExpectedUpdatedAt *time.Time `json:"expected_updated_at,omitempty"`
}
