package repository

import (
	"context"
	"time"

	"github.com/vilohq/vilo-api/internal/domain"
)

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	List(ctx context.Context) ([]domain.Tenant, error)
}

//go:generate mockery --name RoomRepository --output ../mocks
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, tenantID, id string) error
	List(ctx context.Context, tenantID string) ([]domain.Room, error)
	ListActive(ctx context.Context, tenantID string) ([]domain.Room, error)
}

//go:generate mockery --name BookingRepository --output ../mocks
type BookingRepository interface {
	// CreateGuarded runs the overlap query and the insert inside a single
	// serializable transaction. The guard receives the overlapping
	// non-cancelled bookings and aborts the insert by returning an error.
	CreateGuarded(ctx context.Context, booking *domain.Booking, guard func(overlapping []domain.Booking) error) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, tenantID, id string) error
	List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error)
	// Overlapping returns non-cancelled bookings for the room whose
	// [check_in, check_out) range intersects the given one, optionally
	// excluding a booking under edit.
	Overlapping(ctx context.Context, tenantID, roomID string, checkIn, checkOut time.Time, excludeID string) ([]domain.Booking, error)
}

//go:generate mockery --name SeasonalRateRepository --output ../mocks
type SeasonalRateRepository interface {
	Create(ctx context.Context, rate *domain.SeasonalRate) error
	Update(ctx context.Context, rate *domain.SeasonalRate) error
	Delete(ctx context.Context, tenantID, id string) error
	// ListForRoom returns the room's rates ordered priority-descending then
	// created-ascending; the pricing resolver relies on this order for its
	// tie-break.
	ListForRoom(ctx context.Context, tenantID, roomID string) ([]domain.SeasonalRate, error)
}

//go:generate mockery --name CouponRepository --output ../mocks
type CouponRepository interface {
	Create(ctx context.Context, coupon *domain.Coupon) error
	Update(ctx context.Context, coupon *domain.Coupon) error
	Delete(ctx context.Context, tenantID, id string) error
	GetByCode(ctx context.Context, tenantID, code string) (*domain.Coupon, error)
	List(ctx context.Context, tenantID string) ([]domain.Coupon, error)
	IncrementUsage(ctx context.Context, tenantID, id string) error
}

//go:generate mockery --name AddonRepository --output ../mocks
type AddonRepository interface {
	Create(ctx context.Context, addon *domain.Addon) error
	Update(ctx context.Context, addon *domain.Addon) error
	Delete(ctx context.Context, tenantID, id string) error
	List(ctx context.Context, tenantID string) ([]domain.Addon, error)
}

//go:generate mockery --name CustomerRepository --output ../mocks
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.Customer, error)
	GetByEmail(ctx context.Context, tenantID, email string) (*domain.Customer, error)
	GetBySessionToken(ctx context.Context, token string) (*domain.Customer, error)
	ClearExpiredSessions(ctx context.Context, before time.Time) (int64, error)
}

//go:generate mockery --name InvoiceRepository --output ../mocks
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByBookingID(ctx context.Context, tenantID, bookingID string) (*domain.Invoice, error)
	ListArchivable(ctx context.Context, issuedBefore time.Time, limit int) ([]domain.Invoice, error)
	MarkArchived(ctx context.Context, id string, archivedAt time.Time) error
}

//go:generate mockery --name NotificationRepository --output ../mocks
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	List(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, error)
	MarkRead(ctx context.Context, tenantID, id string) error
	MarkAllRead(ctx context.Context, tenantID string) (int64, error)
}

//go:generate mockery --name ActivityRepository --output ../mocks
type ActivityRepository interface {
	Create(ctx context.Context, entry *domain.ActivityEntry) error
	List(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityEntry, error)
}

//go:generate mockery --name SupportRepository --output ../mocks
type SupportRepository interface {
	CreateThread(ctx context.Context, thread *domain.SupportThread) error
	GetThread(ctx context.Context, tenantID, id string) (*domain.SupportThread, error)
	// ListThreads scopes to the customer when customerID is set; the staff
	// console passes nil to see the whole tenant.
	ListThreads(ctx context.Context, tenantID string, customerID *string, status domain.SupportStatus) ([]domain.SupportThread, error)
	AddMessage(ctx context.Context, message *domain.SupportMessage) error
	UpdateThreadStatus(ctx context.Context, tenantID, id string, status domain.SupportStatus) error
}

//go:generate mockery --name DiscoveryRepository --output ../mocks
type DiscoveryRepository interface {
	// ListDiscoverable materializes every discoverable tenant with review
	// and price aggregates joined; the service pipeline does the filtering.
	ListDiscoverable(ctx context.Context) ([]domain.PropertySummary, error)
	GetSummaryBySlug(ctx context.Context, slug string) (*domain.PropertySummary, error)
}

//go:generate mockery --name PropertySearchRepository --output ../mocks
type PropertySearchRepository interface {
	Index(ctx context.Context, property *domain.PropertySummary) error
	Delete(ctx context.Context, tenantID string) error
	Search(ctx context.Context, query string) ([]domain.PropertySummary, error)
}

//go:generate mockery --name PostgresRepository --output ../mocks
type PostgresRepository interface {
	Tenant() TenantRepository
	Room() RoomRepository
	Booking() BookingRepository
	SeasonalRate() SeasonalRateRepository
	Coupon() CouponRepository
	Addon() AddonRepository
	Customer() CustomerRepository
	Invoice() InvoiceRepository
	Notification() NotificationRepository
	Activity() ActivityRepository
	Support() SupportRepository
	Discovery() DiscoveryRepository
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	PropertySearch() PropertySearchRepository
}
