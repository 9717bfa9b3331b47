package usecase

import (
	"context"
	"fmt"

	"pilgrim-provider/internal/data/entity"
	"pilgrim-provider/internal/data/repository"
	"pilgrim-provider/internal/dto/request"
	"pilgrim-provider/internal/dto/response"
	"pilgrim-provider/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService reads and updates the bookings placed on a provider's
// services.
type BookingService interface {
	ListBookings(ctx context.Context, providerID uuid.UUID, req *request.ListBookingsRequest) (*response.BookingListResponse, error)
	GetBooking(ctx context.Context, providerID uuid.UUID, bookingID string) (*response.BookingDetailResponse, error)
	UpdateBooking(ctx context.Context, providerID uuid.UUID, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	bookings repository.BookingRepository
	log      *zap.Logger
}

func NewBookingService(bookings repository.BookingRepository, log *zap.Logger) BookingService {
	return &bookingService{
		bookings: bookings,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) ListBookings(ctx context.Context, providerID uuid.UUID, req *request.ListBookingsRequest) (*response.BookingListResponse, error) {
	req.PaginatedRequest = req.PaginatedRequest.Normalize()
	page := req.PaginatedRequest

	// an oversized page fails here, before any offset is computed
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List bookings validation failed", zap.Any("errors", errs))
		return nil, validationError(utils.FormatValidationErrors(errs))
	}

	var status *entity.BookingStatus
	if req.Status != nil {
		st := entity.BookingStatus(*req.Status)
		status = &st
	}

	bookings, total, err := s.bookings.FindPageByProvider(ctx, providerID, status, page.Limit, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	result := make([]response.BookingDetailResponse, len(bookings))
	for i, booking := range bookings {
		result[i] = response.BookingDetailToResponse(booking)
	}

	s.log.Debug("Bookings listed",
		zap.String("provider_id", providerID.String()),
		zap.Int("count", len(result)),
		zap.Int64("total", total),
		zap.Int("page", page.Page),
		zap.Int("limit", page.Limit),
	)

	return &response.BookingListResponse{
		Bookings:   result,
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: utils.CalculateTotalPages(total, page.Limit),
	}, nil
}

func (s *bookingService) GetBooking(ctx context.Context, providerID uuid.UUID, bookingID string) (*response.BookingDetailResponse, error) {
	id, err := parseResourceID(bookingID, "booking")
	if err != nil {
		return nil, err
	}

	booking, err := s.bookings.FindByIDForProvider(ctx, id, providerID)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, notFound("booking")
	}

	resp := response.BookingDetailToResponse(booking)
	return &resp, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, providerID uuid.UUID, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	id, err := parseResourceID(bookingID, "booking")
	if err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return nil, validationError(utils.FormatValidationErrors(errs))
	}

	var updates []repository.FieldUpdate
	updates = setIf(updates, "booking_status", req.BookingStatus)
	updates = setIf(updates, "payment_status", req.PaymentStatus)
	updates = setIf(updates, "special_requests", req.SpecialRequests)
	if len(updates) == 0 {
		return nil, validationError("no updatable fields supplied")
	}

	opts := repository.BookingUpdateOptions{ExpectedUpdatedAt: req.ExpectedUpdatedAt}
	var target entity.BookingStatus
	if req.BookingStatus != nil {
		target = entity.BookingStatus(*req.BookingStatus)
		opts.FromStatuses = target.AllowedSources()
	}

	booking, err := s.bookings.Update(ctx, id, providerID, updates, opts)
	if err != nil {
		return nil, fmt.Errorf("update booking %s: %w", bookingID, err)
	}

	if booking == nil {
		return nil, s.explainRejectedUpdate(ctx, id, providerID, target, req)
	}

	s.log.Info("Booking updated",
		zap.String("booking_id", bookingID),
		zap.String("provider_id", providerID.String()),
		zap.String("booking_status", string(booking.BookingStatus)),
		zap.String("payment_status", string(booking.PaymentStatus)),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// explainRejectedUpdate works out why a guarded update touched no row.
func (s *bookingService) explainRejectedUpdate(ctx context.Context, id, providerID uuid.UUID, target entity.BookingStatus, req *request.UpdateBookingRequest) error {
	current, err := s.bookings.FindByIDForProvider(ctx, id, providerID)
	if err != nil {
		return fmt.Errorf("update booking %s: %w", id.String(), err)
	}
	if current == nil {
		return notFound("booking")
	}

	if target != "" && !current.BookingStatus.CanTransitionTo(target) {
		s.log.Warn("Rejected booking status transition",
			zap.String("booking_id", id.String()),
			zap.String("from", string(current.BookingStatus)),
			zap.String("to", string(target)),
		)
		return conflictError(fmt.Sprintf("cannot change booking status from %s to %s", current.BookingStatus, target))
	}

	if req.ExpectedUpdatedAt != nil {
		return conflictError("booking was modified since expected_updated_at")
	}
	return conflictError("booking was modified concurrently, retry")
}
