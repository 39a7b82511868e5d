package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vilohq/vilo-api/internal/api/dto"
	"github.com/vilohq/vilo-api/internal/domain"
	"github.com/vilohq/vilo-api/internal/repository"
	"github.com/vilohq/vilo-api/pkg/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	customerSessionTTL = 30 * 24 * time.Hour

	earthRadiusKm = 6371.0
)

// DiscoveryService serves the public cross-tenant marketplace: listing,
// property detail, availability and pricing lookups, and guest self-service
// booking.
type DiscoveryService struct {
	repo         repository.Repository
	bookings     *BookingService
	availability *AvailabilityService
	pricing      *PricingService
	logger       *logger.Logger
}

func NewDiscoveryService(repo repository.Repository, bookings *BookingService, availability *AvailabilityService, pricing *PricingService, logger *logger.Logger) *DiscoveryService {
	return &DiscoveryService{
		repo:         repo,
		bookings:     bookings,
		availability: availability,
		pricing:      pricing,
		logger:       logger,
	}
}

// Haversine returns the great-circle distance in kilometers between two
// points.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func matchesText(p *domain.PropertySummary, text string) bool {
	needle := strings.ToLower(text)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.City), needle) ||
		strings.Contains(strings.ToLower(p.Country), needle)
}

func hasAnyCategory(p *domain.PropertySummary, categories []string) bool {
	for _, want := range categories {
		for _, have := range p.Categories {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}

// FilterProperties applies every filter of the query to the candidate set.
// Pure; the input slice is not modified.
func FilterProperties(props []domain.PropertySummary, q domain.DiscoveryQuery) []domain.PropertySummary {
	var out []domain.PropertySummary
	for i := range props {
		p := &props[i]

		if q.Location != "" && !matchesText(p, q.Location) {
			continue
		}
		if q.Country != "" && !strings.EqualFold(p.Country, q.Country) {
			continue
		}
		if q.City != "" && !strings.EqualFold(p.City, q.City) {
			continue
		}
		if len(q.Categories) > 0 && !hasAnyCategory(p, q.Categories) {
			continue
		}
		if q.MinPrice != nil && p.MinNightlyPrice < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.MinNightlyPrice > *q.MaxPrice {
			continue
		}
		if q.Lat != nil && q.Lng != nil && q.RadiusKm != nil {
			// Properties without coordinates cannot match a proximity filter.
			if p.Latitude == 0 && p.Longitude == 0 {
				continue
			}
			if Haversine(*q.Lat, *q.Lng, p.Latitude, p.Longitude) > *q.RadiusKm {
				continue
			}
		}
		if q.WithCoupon && !p.HasActiveCoupon {
			continue
		}

		out = append(out, *p)
	}
	return out
}

// SortProperties orders the filtered set by the requested key. Stable, so
// equal rows keep their input order and identical queries return identical
// pages.
func SortProperties(props []domain.PropertySummary, key domain.DiscoverySort) {
	switch key {
	case domain.SortPriceAsc:
		sort.SliceStable(props, func(i, j int) bool {
			return props[i].MinNightlyPrice < props[j].MinNightlyPrice
		})
	case domain.SortPriceDesc:
		sort.SliceStable(props, func(i, j int) bool {
			return props[i].MinNightlyPrice > props[j].MinNightlyPrice
		})
	case domain.SortRating:
		sort.SliceStable(props, func(i, j int) bool {
			return props[i].AvgRating > props[j].AvgRating
		})
	default: // popular: featured first, then review count descending
		sort.SliceStable(props, func(i, j int) bool {
			if props[i].Featured != props[j].Featured {
				return props[i].Featured
			}
			return props[i].ReviewCount > props[j].ReviewCount
		})
	}
}

// PageProperties applies the offset/limit window.
func PageProperties(props []domain.PropertySummary, offset, limit int) []domain.PropertySummary {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(props) {
		return nil
	}
	end := offset + limit
	if end > len(props) {
		end = len(props)
	}
	return props[offset:end]
}

// List runs the full pipeline: candidates, filter, sort, page. A free-text
// location query goes through the search index; everything else reads the
// aggregate view directly. A search failure falls back to the database path.
func (s *DiscoveryService) List(ctx context.Context, q domain.DiscoveryQuery) (*dto.PropertyListResponse, error) {
	var candidates []domain.PropertySummary
	var err error

	searched := false
	if q.Location != "" {
		candidates, err = s.repo.PropertySearch().Search(ctx, q.Location)
		if err != nil {
			s.logger.Errorf("Property search failed, falling back to database: %v", err)
		} else {
			searched = true
			q.Location = "" // already applied by the search path
		}
	}
	if !searched {
		candidates, err = s.repo.Discovery().ListDiscoverable(ctx)
		if err != nil {
			return nil, err
		}
	}

	filtered := FilterProperties(candidates, q)
	SortProperties(filtered, q.Sort)
	total := len(filtered)
	page := PageProperties(filtered, q.Offset, q.Limit)

	limit := q.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return &dto.PropertyListResponse{
		Properties: dto.FromProperties(page),
		Total:      total,
		Offset:     q.Offset,
		Limit:      limit,
	}, nil
}

func (s *DiscoveryService) GetBySlug(ctx context.Context, slug string) (*dto.PropertyResponse, error) {
	property, err := s.repo.Discovery().GetSummaryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return dto.FromProperty(property), nil
}

// Rooms lists the property's active rooms for the public detail page.
func (s *DiscoveryService) Rooms(ctx context.Context, slug string) ([]dto.RoomResponse, error) {
	tenant, err := s.tenantBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	rooms, err := s.repo.Room().ListActive(ctx, tenant.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromRooms(rooms), nil
}

// Availability probes a room of the property for the public booking form.
func (s *DiscoveryService) Availability(ctx context.Context, slug, roomID string, checkIn, checkOut time.Time) (*AvailabilityResult, error) {
	tenant, err := s.tenantBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.availability.Check(ctx, tenant.ID, roomID, checkIn, checkOut, "")
}

// BookedDates returns the fully-booked calendar dates for a room.
func (s *DiscoveryService) BookedDates(ctx context.Context, slug, roomID string, from, to time.Time) ([]string, error) {
	tenant, err := s.tenantBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.availability.BookedDates(ctx, tenant.ID, roomID, from, to)
}

// Pricing resolves the nightly schedule for a room of the property.
func (s *DiscoveryService) Pricing(ctx context.Context, slug, roomID string, checkIn, checkOut time.Time) (*PriceSchedule, error) {
	tenant, err := s.tenantBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.pricing.Schedule(ctx, tenant.ID, roomID, checkIn, checkOut)
}

// Book is the guest self-service flow: the customer account is provisioned
// from the contact details and a portal session token is issued alongside
// the booking.
func (s *DiscoveryService) Book(ctx context.Context, req dto.PublicBookingRequest) (*dto.PublicBookingResponse, error) {
	tenant, err := s.tenantBySlug(ctx, req.PropertySlug)
	if err != nil {
		return nil, err
	}

	customer, err := s.provisionCustomer(ctx, tenant.ID, req)
	if err != nil {
		return nil, err
	}

	created, err := s.bookings.CreateForCustomer(ctx, tenant.ID, &customer.ID, dto.CreateBookingRequest{
		RoomID:     req.RoomID,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		GuestPhone: req.GuestPhone,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
		CouponCode: req.CouponCode,
	})
	if err != nil {
		return nil, err
	}

	return &dto.PublicBookingResponse{
		Booking:      created.Booking,
		SessionToken: customer.SessionToken,
	}, nil
}

func (s *DiscoveryService) tenantBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	tenant, err := s.repo.Tenant().GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	if !tenant.Discoverable || tenant.SubscriptionStatus == domain.SubscriptionDisabled {
		return nil, ErrTenantNotFound
	}
	return tenant, nil
}

// provisionCustomer finds or creates the guest account and rotates its
// session token.
func (s *DiscoveryService) provisionCustomer(ctx context.Context, tenantID string, req dto.PublicBookingRequest) (*domain.Customer, error) {
	expiresAt := time.Now().Add(customerSessionTTL)
	token := uuid.New().String()

	customer, err := s.repo.Customer().GetByEmail(ctx, tenantID, req.GuestEmail)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		customer = &domain.Customer{
			TenantID:         tenantID,
			Email:            req.GuestEmail,
			Name:             req.GuestName,
			Phone:            req.GuestPhone,
			SessionToken:     token,
			SessionExpiresAt: &expiresAt,
		}
		if err := s.repo.Customer().Create(ctx, customer); err != nil {
			return nil, err
		}
		return customer, nil
	}

	customer.SessionToken = token
	customer.SessionExpiresAt = &expiresAt
	if req.GuestPhone != "" {
		customer.Phone = req.GuestPhone
	}
	if err := s.repo.Customer().Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}
