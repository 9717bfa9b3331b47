package response

import (
	"time"

	"pilgrim-provider/internal/data/entity"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID              string               `json:"id"`
	ServiceID       string               `json:"service_id"`
	ProviderID      string               `json:"provider_id"`
	TravelerID      string               `json:"traveler_id"`
	BookingDate     string               `json:"booking_date"`
	StartDate       string               `json:"start_date"`
	EndDate         string               `json:"end_date"`
	GroupSize       int                  `json:"group_size"`
	TotalAmount     float64              `json:"total_amount"`
	Currency        *string              `json:"currency"`
	BookingStatus   entity.BookingStatus `json:"booking_status"`
	PaymentStatus   entity.PaymentStatus `json:"payment_status"`
	ContactEmail    *string              `json:"contact_email"`
	ContactPhone    *string              `json:"contact_phone"`
	SpecialRequests *string              `json:"special_requests"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

type ServiceSummaryResponse struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	ServiceType string `json:"service_type,omitempty"`
}

// BookingDetailResponse is a booking with its service embedded under
// "services", the shape the dashboard client reads.
type BookingDetailResponse struct {
	BookingResponse
	Service ServiceSummaryResponse `json:"services"`
}

type BookingListResponse struct {
	Bookings   []BookingDetailResponse `json:"bookings"`
	Total      int64                   `json:"total"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
	TotalPages int                     `json:"totalPages"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID.String(),
		ServiceID:       b.ServiceID.String(),
		ProviderID:      b.ProviderID.String(),
		TravelerID:      b.TravelerID.String(),
		BookingDate:     b.BookingDate.Format(dateLayout),
		StartDate:       b.StartDate.Format(dateLayout),
		EndDate:         b.EndDate.Format(dateLayout),
		GroupSize:       b.GroupSize,
		TotalAmount:     b.TotalAmount,
		Currency:        b.Currency,
		BookingStatus:   b.BookingStatus,
		PaymentStatus:   b.PaymentStatus,
		ContactEmail:    b.ContactEmail,
		ContactPhone:    b.ContactPhone,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func BookingDetailToResponse(b *entity.BookingWithService) BookingDetailResponse {
	return BookingDetailResponse{
		BookingResponse: BookingToResponse(&b.Booking),
		Service: ServiceSummaryResponse{
			Name:        b.Service.Name,
			Location:    b.Service.Location,
			ServiceType: b.Service.ServiceType,
		},
	}
}
