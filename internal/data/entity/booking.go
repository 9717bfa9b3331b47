package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// bookingTransitions maps a target status to the statuses it may be
// reached from. Re-applying the current status is always allowed.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusPending},
	BookingStatusConfirmed: {BookingStatusPending, BookingStatusConfirmed},
	BookingStatusCompleted: {BookingStatusConfirmed, BookingStatusCompleted},
	BookingStatusCancelled: {BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled},
}

// AllowedSources returns the statuses a booking may move to s from.
func (s BookingStatus) AllowedSources() []BookingStatus {
	return slices.Clone(bookingTransitions[s])
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return slices.Contains(bookingTransitions[next], s)
}

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

type Booking struct {
	Base
	ServiceID       uuid.UUID     `db:"service_id"`
	ProviderID      uuid.UUID     `db:"provider_id"`
	TravelerID      uuid.UUID     `db:"traveler_id"`
	BookingDate     time.Time     `db:"booking_date"`
	StartDate       time.Time     `db:"start_date"`
	EndDate         time.Time     `db:"end_date"`
	GroupSize       int           `db:"group_size"`
	TotalAmount     float64       `db:"total_amount"`
	Currency        *string       `db:"currency"`
	BookingStatus   BookingStatus `db:"booking_status"`
	PaymentStatus   PaymentStatus `db:"payment_status"`
	ContactEmail    *string       `db:"contact_email"`
	ContactPhone    *string       `db:"contact_phone"`
	SpecialRequests *string       `db:"special_requests"`
}

// ServiceSummary is the slice of the referenced Service shown next to a
// booking.
type ServiceSummary struct {
	Name        string `db:"name"`
	Location    string `db:"location"`
	ServiceType string `db:"service_type"`
}

type BookingWithService struct {
	Booking
	Service ServiceSummary
}
