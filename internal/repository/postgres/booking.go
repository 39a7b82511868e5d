package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vilohq/vilo-api/internal/domain"
)

type BookingRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewBookingRepository(writerDB, readerDB *gorm.DB) *BookingRepository {
	return &BookingRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// CreateGuarded re-runs the overlap query and the insert inside one
// serializable transaction, so two concurrent requests for the same room and
// range cannot both pass the availability check. The guard callback carries
// the availability policy; returning an error from it aborts the insert.
func (r *BookingRepository) CreateGuarded(ctx context.Context, booking *domain.Booking, guard func(overlapping []domain.Booking) error) error {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}

	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var overlapping []domain.Booking
		err := tx.
			Where("tenant_id = ? AND room_id = ? AND status <> ?",
				booking.TenantID, booking.RoomID, domain.BookingCancelled).
			Where("check_in < ? AND check_out > ?", booking.CheckOut, booking.CheckIn).
			Order("check_in ASC").
			Find(&overlapping).Error
		if err != nil {
			return err
		}

		if err := guard(overlapping); err != nil {
			return err
		}

		return tx.Create(booking).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

func (r *BookingRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.readerDB.WithContext(ctx).
		First(&booking, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	return r.writerDB.WithContext(ctx).Save(booking).Error
}

func (r *BookingRepository) Delete(ctx context.Context, tenantID, id string) error {
	return r.writerDB.WithContext(ctx).
		Delete(&domain.Booking{}, "tenant_id = ? AND id = ?", tenantID, id).Error
}

func (r *BookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	var bookings []domain.Booking

	db := r.readerDB.WithContext(ctx).Where("tenant_id = ?", filter.TenantID)

	if filter.RoomID != "" {
		db = db.Where("room_id = ?", filter.RoomID)
	}
	if filter.CustomerID != "" {
		db = db.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Payment != "" {
		db = db.Where("payment_status = ?", filter.Payment)
	}
	if !filter.From.IsZero() {
		db = db.Where("check_out > ?", filter.From)
	}
	if !filter.To.IsZero() {
		db = db.Where("check_in < ?", filter.To)
	}

	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	if err := db.Order("check_in DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingRepository) Overlapping(ctx context.Context, tenantID, roomID string, checkIn, checkOut time.Time, excludeID string) ([]domain.Booking, error) {
	var bookings []domain.Booking

	db := r.readerDB.WithContext(ctx).
		Where("tenant_id = ? AND room_id = ? AND status <> ?", tenantID, roomID, domain.BookingCancelled).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)

	if excludeID != "" {
		db = db.Where("id <> ?", excludeID)
	}

	if err := db.Order("check_in ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}
