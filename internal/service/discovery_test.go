package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/vilohq/vilo-api/internal/domain"
	"github.com/vilohq/vilo-api/internal/mocks"
	"github.com/vilohq/vilo-api/pkg/logger"
)

func sampleProperties() []domain.PropertySummary {
	return []domain.PropertySummary{
		{TenantID: "t1", Name: "Lagoon Villas", Slug: "lagoon-villas", City: "Lagos", Country: "Nigeria",
			Latitude: 6.45, Longitude: 3.39, Categories: []string{"villa", "beach"},
			MinNightlyPrice: 250, ReviewCount: 40, AvgRating: 4.6, Featured: true},
		{TenantID: "t2", Name: "Savanna Lodge", Slug: "savanna-lodge", City: "Nairobi", Country: "Kenya",
			Latitude: -1.29, Longitude: 36.82, Categories: []string{"lodge"},
			MinNightlyPrice: 120, ReviewCount: 95, AvgRating: 4.8, HasActiveCoupon: true},
		{TenantID: "t3", Name: "Harbour Inn", Slug: "harbour-inn", City: "Cape Town", Country: "South Africa",
			Categories:      []string{"hotel"},
			MinNightlyPrice: 180, ReviewCount: 12, AvgRating: 3.9},
	}
}

func TestFilterProperties(t *testing.T) {
	props := sampleProperties()

	t.Run("country filter is case-insensitive", func(t *testing.T) {
		out := FilterProperties(props, domain.DiscoveryQuery{Country: "kenya"})
		require.Len(t, out, 1)
		assert.Equal(t, "savanna-lodge", out[0].Slug)
	})

	t.Run("price band", func(t *testing.T) {
		min, max := 100.0, 200.0
		out := FilterProperties(props, domain.DiscoveryQuery{MinPrice: &min, MaxPrice: &max})
		require.Len(t, out, 2)
	})

	t.Run("category matches any requested", func(t *testing.T) {
		out := FilterProperties(props, domain.DiscoveryQuery{Categories: []string{"beach", "hotel"}})
		require.Len(t, out, 2)
		assert.Equal(t, "lagoon-villas", out[0].Slug)
		assert.Equal(t, "harbour-inn", out[1].Slug)
	})

	t.Run("with_coupon", func(t *testing.T) {
		out := FilterProperties(props, domain.DiscoveryQuery{WithCoupon: true})
		require.Len(t, out, 1)
		assert.Equal(t, "savanna-lodge", out[0].Slug)
	})

	t.Run("input slice untouched", func(t *testing.T) {
		before := sampleProperties()
		FilterProperties(props, domain.DiscoveryQuery{Country: "kenya"})
		assert.Equal(t, before, props)
	})
}

func TestFilterProperties_Proximity(t *testing.T) {
	props := sampleProperties()
	// Ikeja, a few km from the Lagos property.
	lat, lng, radius := 6.60, 3.35, 50.0

	out := FilterProperties(props, domain.DiscoveryQuery{Lat: &lat, Lng: &lng, RadiusKm: &radius})

	require.Len(t, out, 1)
	assert.Equal(t, "lagoon-villas", out[0].Slug)
}

func TestFilterProperties_ProximitySkipsZeroCoordinates(t *testing.T) {
	props := sampleProperties()
	// Harbour Inn has no coordinates; a radius centered on (0,0) must not
	// treat the zero value as a real location in the Gulf of Guinea.
	lat, lng, radius := 0.0, 0.0, 100.0

	out := FilterProperties(props, domain.DiscoveryQuery{Lat: &lat, Lng: &lng, RadiusKm: &radius})

	assert.Empty(t, out)
}

func TestHaversine(t *testing.T) {
	// Lagos to Nairobi is roughly 3800 km.
	d := Haversine(6.45, 3.39, -1.29, 36.82)
	assert.InDelta(t, 3800, d, 100)

	assert.Zero(t, Haversine(6.45, 3.39, 6.45, 3.39))
}

func TestSortProperties(t *testing.T) {
	t.Run("price ascending", func(t *testing.T) {
		props := sampleProperties()
		SortProperties(props, domain.SortPriceAsc)
		assert.Equal(t, []string{"savanna-lodge", "harbour-inn", "lagoon-villas"}, slugs(props))
	})

	t.Run("rating descending", func(t *testing.T) {
		props := sampleProperties()
		SortProperties(props, domain.SortRating)
		assert.Equal(t, []string{"savanna-lodge", "lagoon-villas", "harbour-inn"}, slugs(props))
	})

	t.Run("popular puts featured first", func(t *testing.T) {
		props := sampleProperties()
		SortProperties(props, domain.SortPopular)
		assert.Equal(t, "lagoon-villas", props[0].Slug)
		assert.Equal(t, "savanna-lodge", props[1].Slug)
	})

	t.Run("stable for equal keys", func(t *testing.T) {
		props := []domain.PropertySummary{
			{Slug: "a", MinNightlyPrice: 100},
			{Slug: "b", MinNightlyPrice: 100},
			{Slug: "c", MinNightlyPrice: 100},
		}
		SortProperties(props, domain.SortPriceAsc)
		assert.Equal(t, []string{"a", "b", "c"}, slugs(props))
	})
}

func slugs(props []domain.PropertySummary) []string {
	out := make([]string, len(props))
	for i := range props {
		out[i] = props[i].Slug
	}
	return out
}

func TestPageProperties(t *testing.T) {
	props := sampleProperties()

	assert.Len(t, PageProperties(props, 0, 2), 2)
	assert.Len(t, PageProperties(props, 2, 2), 1)
	assert.Nil(t, PageProperties(props, 10, 2))
	assert.Len(t, PageProperties(props, -1, 2), 2)
	// Zero limit falls back to the default page size.
	assert.Len(t, PageProperties(props, 0, 0), 3)
}

type DiscoveryServiceTestSuite struct {
	suite.Suite
	mockRepo      *mocks.Repository
	mockTenant    *mocks.TenantRepository
	mockDiscovery *mocks.DiscoveryRepository
	mockSearch    *mocks.PropertySearchRepository
	service       *DiscoveryService
}

func (s *DiscoveryServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockDiscovery = new(mocks.DiscoveryRepository)
	s.mockSearch = new(mocks.PropertySearchRepository)

	s.mockRepo.On("Tenant").Return(s.mockTenant)
	s.mockRepo.On("Discovery").Return(s.mockDiscovery)
	s.mockRepo.On("PropertySearch").Return(s.mockSearch)

	s.service = NewDiscoveryService(s.mockRepo, nil, nil, nil, logger.NewLogger("test"))
}

func TestDiscoveryService(t *testing.T) {
	suite.Run(t, new(DiscoveryServiceTestSuite))
}

func (s *DiscoveryServiceTestSuite) TestList_TextQueryUsesSearchIndex() {
	ctx := context.Background()
	s.mockSearch.On("Search", ctx, "lagos").Return(sampleProperties()[:1], nil)

	resp, err := s.service.List(ctx, domain.DiscoveryQuery{Location: "lagos"})

	s.NoError(err)
	s.Equal(1, resp.Total)
	s.mockDiscovery.AssertNotCalled(s.T(), "ListDiscoverable", mock.Anything)
}

func (s *DiscoveryServiceTestSuite) TestList_SearchFailureFallsBackToDatabase() {
	ctx := context.Background()
	s.mockSearch.On("Search", ctx, "lagos").Return(nil, assert.AnError)
	s.mockDiscovery.On("ListDiscoverable", ctx).Return(sampleProperties(), nil)

	resp, err := s.service.List(ctx, domain.DiscoveryQuery{Location: "lagos"})

	s.NoError(err)
	// The fallback path applies the text filter itself.
	s.Equal(1, resp.Total)
	s.Equal("lagoon-villas", resp.Properties[0].Slug)
}

func (s *DiscoveryServiceTestSuite) TestList_Deterministic() {
	ctx := context.Background()
	s.mockDiscovery.On("ListDiscoverable", ctx).Return(sampleProperties(), nil)

	q := domain.DiscoveryQuery{Sort: domain.SortPriceAsc, Limit: 2}
	first, err := s.service.List(ctx, q)
	s.Require().NoError(err)
	second, err := s.service.List(ctx, q)
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *DiscoveryServiceTestSuite) TestTenantBySlug_HiddenTenantsNotFound() {
	ctx := context.Background()

	s.mockTenant.On("GetBySlug", ctx, "hidden").
		Return(&domain.Tenant{ID: "t9", Slug: "hidden", Discoverable: false}, nil)
	_, err := s.service.tenantBySlug(ctx, "hidden")
	s.ErrorIs(err, ErrTenantNotFound)

	s.mockTenant.On("GetBySlug", ctx, "disabled").
		Return(&domain.Tenant{ID: "t10", Slug: "disabled", Discoverable: true,
			SubscriptionStatus: domain.SubscriptionDisabled}, nil)
	_, err = s.service.tenantBySlug(ctx, "disabled")
	s.ErrorIs(err, ErrTenantNotFound)
}
