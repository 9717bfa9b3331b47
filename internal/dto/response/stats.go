package response

import (
	"pilgrim-provider/internal/data/entity"
)

type RecentBookingResponse struct {
	ID            string                 `json:"id"`
	BookingDate   string                 `json:"booking_date"`
	StartDate     string                 `json:"start_date"`
	EndDate       string                 `json:"end_date"`
	GroupSize     int                    `json:"group_size"`
	TotalAmount   float64                `json:"total_amount"`
	BookingStatus entity.BookingStatus   `json:"booking_status"`
	PaymentStatus entity.PaymentStatus   `json:"payment_status"`
	ContactEmail  *string                `json:"contact_email"`
	Service       ServiceSummaryResponse `json:"services"`
}

// ProviderStatsResponse is the dashboard summary for one provider.
type ProviderStatsResponse struct {
	TotalServices     int64                   `json:"totalServices"`
	PendingApproval   int64                   `json:"pendingApproval"`
	TotalBookings     int64                   `json:"totalBookings"`
	ConfirmedBookings int64                   `json:"confirmedBookings"`
	TotalRevenue      float64                 `json:"totalRevenue"`
	RecentBookings    []RecentBookingResponse `json:"recentBookings"`
}

func RecentBookingToResponse(b *entity.BookingWithService) RecentBookingResponse {
	return RecentBookingResponse{
		ID:            b.ID.String(),
		BookingDate:   b.BookingDate.Format(dateLayout),
		StartDate:     b.StartDate.Format(dateLayout),
		EndDate:       b.EndDate.Format(dateLayout),
		GroupSize:     b.GroupSize,
		TotalAmount:   b.TotalAmount,
		BookingStatus: b.BookingStatus,
		PaymentStatus: b.PaymentStatus,
		ContactEmail:  b.ContactEmail,
		Service: ServiceSummaryResponse{
			Name:     b.Service.Name,
			Location: b.Service.Location,
		},
	}
}
