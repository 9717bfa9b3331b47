package adaptor

import (
	"net/http"

	"pilgrim-provider/internal/dto/request"
	"pilgrim-provider/internal/usecase"
	"pilgrim-provider/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetBookings handles GET /provider-bookings. With an id it returns one
// booking, otherwise a page filtered by ?status=.
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w)
		return
	}

	if id := resourceID(r); id != "" {
		booking, err := h.service.GetBooking(r.Context(), userID, id)
		if err != nil {
			handleServiceError(h.log, w, err, "get booking")
			return
		}
		utils.ResponseSuccess(w, booking)
		return
	}

	query := r.URL.Query()
	req := &request.ListBookingsRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:  utils.ParsePositiveInt(query.Get("page"), request.DefaultPage),
			Limit: utils.ParsePositiveInt(query.Get("limit"), request.DefaultLimit),
		},
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	bookings, err := h.service.ListBookings(r.Context(), userID, req)
	if err != nil {
		handleServiceError(h.log, w, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}

// UpdateBooking handles PUT /provider-bookings?id= (or /{id})
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w)
		return
	}

	id := resourceID(r)
	if id == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.UpdateBookingRequest
	if err := decodeStrict(r.Body, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return
	}

	booking, err := h.service.UpdateBooking(r.Context(), userID, id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update booking")
		return
	}

	utils.ResponseSuccess(w, booking)
}
