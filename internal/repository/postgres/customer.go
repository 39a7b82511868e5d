package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vilohq/vilo-api/internal/domain"
)

type CustomerRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewCustomerRepository(writerDB, readerDB *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(customer).Error
}

func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	return r.writerDB.WithContext(ctx).Save(customer).Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.readerDB.WithContext(ctx).
		First(&customer, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, tenantID, email string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.readerDB.WithContext(ctx).
		First(&customer, "tenant_id = ? AND email = ?", tenantID, email).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) GetBySessionToken(ctx context.Context, token string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.readerDB.WithContext(ctx).
		First(&customer, "session_token = ? AND session_expires_at > ?", token, time.Now()).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// ClearExpiredSessions blanks session tokens that expired before the cutoff
// and returns how many rows were touched.
func (r *CustomerRepository) ClearExpiredSessions(ctx context.Context, before time.Time) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("session_token <> '' AND session_expires_at < ?", before).
		Updates(map[string]interface{}{
			"session_token":      "",
			"session_expires_at": nil,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
