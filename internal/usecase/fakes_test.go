package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"pilgrim-provider/internal/data/entity"
	"pilgrim-provider/internal/data/repository"

	"github.com/google/uuid"
)

// memServices is an in-memory ServiceRepository.
type memServices struct {
	mu       sync.Mutex
	rows     map[uuid.UUID]*entity.Service
	bookings *memBookings
}

func newMemServices() *memServices {
	return &memServices{rows: make(map[uuid.UUID]*entity.Service)}
}

func (m *memServices) Create(ctx context.Context, s *entity.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.rows[s.ID] = &cp
	return nil
}

func (m *memServices) FindByIDForProvider(ctx context.Context, id, providerID uuid.UUID) (*entity.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[id]
	if !ok || s.ProviderID != providerID {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memServices) FindByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*entity.Service{}
	for _, s := range m.rows {
		if s.ProviderID == providerID {
			cp := *s
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *entity.Service) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID.String(), a.ID.String())
	})
	return out, nil
}

func (m *memServices) Update(ctx context.Context, id, providerID uuid.UUID, updates []repository.FieldUpdate, expected *time.Time) (*entity.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[id]
	if !ok || s.ProviderID != providerID {
		return nil, nil
	}
	if expected != nil && !s.UpdatedAt.Equal(*expected) {
		return nil, nil
	}
	for _, u := range updates {
		switch u.Column {
		case "name":
			s.Name = u.Value.(string)
		case "price_per_day":
			v := u.Value.(float64)
			s.PricePerDay = &v
		case "availability_status":
			s.AvailabilityStatus = entity.AvailabilityStatus(u.Value.(string))
		default:
			return nil, fmt.Errorf("memServices: column %q not supported", u.Column)
		}
	}
	s.UpdatedAt = s.UpdatedAt.Add(time.Second)
	cp := *s
	return &cp, nil
}

func (m *memServices) Delete(ctx context.Context, id, providerID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[id]
	if !ok || s.ProviderID != providerID {
		return false, nil
	}
	if m.bookings != nil && m.bookings.referencesService(id) {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

func (m *memServices) CountByProvider(ctx context.Context, providerID uuid.UUID, approval *entity.ApprovalStatus) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, s := range m.rows {
		if s.ProviderID == providerID && (approval == nil || s.ApprovalStatus == *approval) {
			n++
		}
	}
	return n, nil
}

// memBookings is an in-memory BookingRepository.
type memBookings struct {
	mu       sync.Mutex
	rows      map[uuid.UUID]*entity.Booking
	services  map[uuid.UUID]entity.ServiceSummary
	pageCalls int
}

func newMemBookings() *memBookings {
	return &memBookings{
		rows:     make(map[uuid.UUID]*entity.Booking),
		services: make(map[uuid.UUID]entity.ServiceSummary),
	}
}

func (m *memBookings) add(b *entity.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[b.ID] = b
}

func (m *memBookings) referencesService(serviceID uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.rows {
		if b.ServiceID == serviceID {
			return true
		}
	}
	return false
}

func (m *memBookings) withService(b *entity.Booking) *entity.BookingWithService {
	return &entity.BookingWithService{Booking: *b, Service: m.services[b.ServiceID]}
}

func (m *memBookings) FindByIDForProvider(ctx context.Context, id, providerID uuid.UUID) (*entity.BookingWithService, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.rows[id]
	if !ok || b.ProviderID != providerID {
		return nil, nil
	}
	return m.withService(b), nil
}

func (m *memBookings) filter(providerID uuid.UUID, status *entity.BookingStatus) []*entity.Booking {
	out := []*entity.Booking{}
	for _, b := range m.rows {
		if b.ProviderID == providerID && (status == nil || b.BookingStatus == *status) {
			out = append(out, b)
		}
	}
	slices.SortFunc(out, func(a, b *entity.Booking) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID.String(), a.ID.String())
	})
	return out
}

func (m *memBookings) FindByProvider(ctx context.Context, providerID uuid.UUID, status *entity.BookingStatus, limit, offset int) ([]*entity.BookingWithService, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := m.filter(providerID, status)
	out := []*entity.BookingWithService{}
	for i := offset; i < len(rows) && i < offset+limit; i++ {
		out = append(out, m.withService(rows[i]))
	}
	return out, nil
}

func (m *memBookings) FindPageByProvider(ctx context.Context, providerID uuid.UUID, status *entity.BookingStatus, limit, offset int) ([]*entity.BookingWithService, int64, error) {
	m.mu.Lock()
	m.pageCalls++
	m.mu.Unlock()
	if offset < 0 {
		return nil, 0, fmt.Errorf("memBookings: OFFSET must not be negative")
	}
	rows, err := m.FindByProvider(ctx, providerID, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := m.CountByProvider(ctx, providerID, status)
	return rows, total, err
}

func (m *memBookings) CountByProvider(ctx context.Context, providerID uuid.UUID, status *entity.BookingStatus) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.filter(providerID, status))), nil
}

func (m *memBookings) Update(ctx context.Context, id, providerID uuid.UUID, updates []repository.FieldUpdate, opts repository.BookingUpdateOptions) (*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.rows[id]
	if !ok || b.ProviderID != providerID {
		return nil, nil
	}
	if len(opts.FromStatuses) > 0 && !slices.Contains(opts.FromStatuses, b.BookingStatus) {
		return nil, nil
	}
	if opts.ExpectedUpdatedAt != nil && !b.UpdatedAt.Equal(*opts.ExpectedUpdatedAt) {
		return nil, nil
	}
	for _, u := range updates {
		switch u.Column {
		case "booking_status":
			b.BookingStatus = entity.BookingStatus(u.Value.(string))
		case "payment_status":
			b.PaymentStatus = entity.PaymentStatus(u.Value.(string))
		case "special_requests":
			v := u.Value.(string)
			b.SpecialRequests = &v
		default:
			return nil, fmt.Errorf("memBookings: column %q not supported", u.Column)
		}
	}
	b.UpdatedAt = b.UpdatedAt.Add(time.Second)
	cp := *b
	return &cp, nil
}

func (m *memBookings) SumRevenueByProvider(ctx context.Context, providerID uuid.UUID) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total float64
	for _, b := range m.rows {
		if b.ProviderID == providerID &&
			b.BookingStatus == entity.BookingStatusCompleted &&
			b.PaymentStatus == entity.PaymentStatusPaid {
			total += b.TotalAmount
		}
	}
	return total, nil
}
