package wire

import (
	"pilgrim-provider/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBookings(r chi.Router, bookingHandler *adaptor.BookingHandler, protected func(chi.Router)) {
	r.Route("/provider-bookings", func(r chi.Router) {
		protected(r)

		r.Get("/", bookingHandler.GetBookings)
		r.Put("/", bookingHandler.UpdateBooking)

		r.Get("/{id}", bookingHandler.GetBookings)
		r.Put("/{id}", bookingHandler.UpdateBooking)
	})
}
