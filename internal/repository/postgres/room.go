package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vilohq/vilo-api/internal/domain"
)

type RoomRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewRoomRepository(writerDB, readerDB *gorm.DB) *RoomRepository {
	return &RoomRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	if room.ID == "" {
		room.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Room, error) {
	var room domain.Room
	err := r.readerDB.WithContext(ctx).
		First(&room, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	return r.writerDB.WithContext(ctx).Save(room).Error
}

func (r *RoomRepository) Delete(ctx context.Context, tenantID, id string) error {
	return r.writerDB.WithContext(ctx).
		Delete(&domain.Room{}, "tenant_id = ? AND id = ?", tenantID, id).Error
}

func (r *RoomRepository) List(ctx context.Context, tenantID string) ([]domain.Room, error) {
	var rooms []domain.Room
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *RoomRepository) ListActive(ctx context.Context, tenantID string) ([]domain.Room, error) {
	var rooms []domain.Room
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ? AND active = true", tenantID).
		Order("created_at ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}
