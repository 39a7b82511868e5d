package postgres

import (
	"gorm.io/gorm"

	"github.com/vilohq/vilo-api/internal/config"
	"github.com/vilohq/vilo-api/internal/repository"
)

type postgresRepository struct {
	writerDB         *gorm.DB
	readerDB         *gorm.DB
	tenantRepo       repository.TenantRepository
	roomRepo         repository.RoomRepository
	bookingRepo      repository.BookingRepository
	seasonalRateRepo repository.SeasonalRateRepository
	couponRepo       repository.CouponRepository
	addonRepo        repository.AddonRepository
	customerRepo     repository.CustomerRepository
	invoiceRepo      repository.InvoiceRepository
	notificationRepo repository.NotificationRepository
	activityRepo     repository.ActivityRepository
	supportRepo      repository.SupportRepository
	discoveryRepo    repository.DiscoveryRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.PostgresRepository {
	writer, reader := dbConnections.Writer, dbConnections.Reader
	return &postgresRepository{
		writerDB:         writer,
		readerDB:         reader,
		tenantRepo:       NewTenantRepository(writer, reader),
		roomRepo:         NewRoomRepository(writer, reader),
		bookingRepo:      NewBookingRepository(writer, reader),
		seasonalRateRepo: NewSeasonalRateRepository(writer, reader),
		couponRepo:       NewCouponRepository(writer, reader),
		addonRepo:        NewAddonRepository(writer, reader),
		customerRepo:     NewCustomerRepository(writer, reader),
		invoiceRepo:      NewInvoiceRepository(writer, reader),
		notificationRepo: NewNotificationRepository(writer, reader),
		activityRepo:     NewActivityRepository(writer, reader),
		supportRepo:      NewSupportRepository(writer, reader),
		discoveryRepo:    NewDiscoveryRepository(reader),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository             { return r.tenantRepo }
func (r *postgresRepository) Room() repository.RoomRepository                 { return r.roomRepo }
func (r *postgresRepository) Booking() repository.BookingRepository           { return r.bookingRepo }
func (r *postgresRepository) SeasonalRate() repository.SeasonalRateRepository { return r.seasonalRateRepo }
func (r *postgresRepository) Coupon() repository.CouponRepository             { return r.couponRepo }
func (r *postgresRepository) Addon() repository.AddonRepository               { return r.addonRepo }
func (r *postgresRepository) Customer() repository.CustomerRepository         { return r.customerRepo }
func (r *postgresRepository) Invoice() repository.InvoiceRepository           { return r.invoiceRepo }
func (r *postgresRepository) Notification() repository.NotificationRepository { return r.notificationRepo }
func (r *postgresRepository) Activity() repository.ActivityRepository         { return r.activityRepo }
func (r *postgresRepository) Support() repository.SupportRepository           { return r.supportRepo }
func (r *postgresRepository) Discovery() repository.DiscoveryRepository       { return r.discoveryRepo }
