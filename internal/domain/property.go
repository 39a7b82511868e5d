package domain

import "github.com/lib/pq"

// PropertySummary is the cross-tenant discovery card: one discoverable
// tenant with its review and price aggregates already joined in. The
// discovery pipeline filters, sorts and pages these rows in memory.
type PropertySummary struct {
	TenantID        string   `json:"tenant_id"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Description     string   `json:"description"`
	Country         string   `json:"country"`
	City            string   `json:"city"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	Categories      pq.StringArray `json:"categories" gorm:"type:text[]"`
	Featured        bool     `json:"featured"`
	Currency        string   `json:"currency"`
	MinNightlyPrice float64  `json:"min_nightly_price"`
	ReviewCount     int64    `json:"review_count"`
	AvgRating       float64  `json:"avg_rating"`
	HasActiveCoupon bool     `json:"has_active_coupon"`
}

type DiscoverySort string

const (
	SortPopular   DiscoverySort = "popular"
	SortPriceAsc  DiscoverySort = "price_asc"
	SortPriceDesc DiscoverySort = "price_desc"
	SortRating    DiscoverySort = "rating"
)

// DiscoveryQuery carries the public listing filters. Location is a free-text
// match against name/city/country; Lat/Lng/RadiusKm form the proximity
// filter; nil pointer fields mean "not filtered".
type DiscoveryQuery struct {
	Location   string        `json:"location"`
	Country    string        `json:"country"`
	City       string        `json:"city"`
	Categories []string      `json:"categories"`
	MinPrice   *float64      `json:"min_price,omitempty"`
	MaxPrice   *float64      `json:"max_price,omitempty"`
	Lat        *float64      `json:"lat,omitempty"`
	Lng        *float64      `json:"lng,omitempty"`
	RadiusKm   *float64      `json:"radius_km,omitempty"`
	WithCoupon bool          `json:"with_coupon"`
	Sort       DiscoverySort `json:"sort"`
	Offset     int           `json:"offset"`
	Limit      int           `json:"limit"`
}
