package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vilohq/vilo-api/internal/api/dto"
	"github.com/vilohq/vilo-api/internal/domain"
	"github.com/vilohq/vilo-api/internal/repository"
	"github.com/vilohq/vilo-api/pkg/logger"
	"github.com/vilohq/vilo-api/pkg/utils"
)

// RoomService covers the owner-facing catalog: rooms, seasonal rates,
// add-ons and coupons.
type RoomService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewRoomService(repo repository.Repository, logger *logger.Logger) *RoomService {
	return &RoomService{repo: repo, logger: logger}
}

func (s *RoomService) Create(ctx context.Context, tenantID string, req dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	room := req.ToRoom(tenantID)
	if err := s.repo.Room().Create(ctx, room); err != nil {
		return nil, err
	}
	return dto.FromRoom(room), nil
}

func (s *RoomService) GetByID(ctx context.Context, tenantID, id string) (*dto.RoomResponse, error) {
	room, err := s.repo.Room().GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return dto.FromRoom(room), nil
}

func (s *RoomService) Update(ctx context.Context, tenantID, id string, req dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	room, err := s.repo.Room().GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.BasePricePerNight != nil {
		room.BasePricePerNight = *req.BasePricePerNight
	}
	if req.Currency != nil {
		room.Currency = *req.Currency
	}
	if req.MaxGuests != nil {
		room.MaxGuests = *req.MaxGuests
	}
	if req.TotalUnits != nil {
		room.TotalUnits = *req.TotalUnits
	}
	if req.MinStayNights != nil {
		room.MinStayNights = *req.MinStayNights
	}
	if req.MaxStayNights != nil {
		room.MaxStayNights = req.MaxStayNights
	}
	if req.Active != nil {
		room.Active = *req.Active
	}

	if err := s.repo.Room().Update(ctx, room); err != nil {
		return nil, err
	}
	return dto.FromRoom(room), nil
}

func (s *RoomService) Delete(ctx context.Context, tenantID, id string) error {
	if _, err := s.repo.Room().GetByID(ctx, tenantID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return err
	}
	return s.repo.Room().Delete(ctx, tenantID, id)
}

func (s *RoomService) List(ctx context.Context, tenantID string) ([]dto.RoomResponse, error) {
	rooms, err := s.repo.Room().List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return dto.FromRooms(rooms), nil
}

// CreateSeasonalRate adds a price override window to a room.
func (s *RoomService) CreateSeasonalRate(ctx context.Context, tenantID string, req dto.CreateSeasonalRateRequest) (*dto.SeasonalRateResponse, error) {
	if _, err := s.repo.Room().GetByID(ctx, tenantID, req.RoomID); err != nil {
		return nil, ErrRoomNotFound
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end_date before start_date", ErrValidation)
	}

	rate := &domain.SeasonalRate{
		TenantID:      tenantID,
		RoomID:        req.RoomID,
		Name:          req.Name,
		StartDate:     startDate,
		EndDate:       endDate,
		PricePerNight: req.PricePerNight,
		Priority:      req.Priority,
	}
	if err := s.repo.SeasonalRate().Create(ctx, rate); err != nil {
		return nil, err
	}
	return dto.FromSeasonalRate(rate), nil
}

func (s *RoomService) ListSeasonalRates(ctx context.Context, tenantID, roomID string) ([]dto.SeasonalRateResponse, error) {
	rates, err := s.repo.SeasonalRate().ListForRoom(ctx, tenantID, roomID)
	if err != nil {
		return nil, err
	}
	return dto.FromSeasonalRates(rates), nil
}

func (s *RoomService) DeleteSeasonalRate(ctx context.Context, tenantID, id string) error {
	return s.repo.SeasonalRate().Delete(ctx, tenantID, id)
}

func (s *RoomService) CreateCoupon(ctx context.Context, tenantID string, req dto.CreateCouponRequest) (*dto.CouponResponse, error) {
	coupon := &domain.Coupon{
		TenantID:      tenantID,
		Code:          req.Code,
		DiscountType:  domain.DiscountType(req.DiscountType),
		DiscountValue: req.DiscountValue,
		MaxUses:       req.MaxUses,
		Active:        true,
	}
	if coupon.DiscountType != domain.DiscountPercent && coupon.DiscountType != domain.DiscountFixed {
		return nil, fmt.Errorf("%w: discount_type must be percent or fixed", ErrValidation)
	}
	if req.ValidFrom != "" {
		from, err := utils.ParseDate(req.ValidFrom)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		coupon.ValidFrom = &from
	}
	if req.ValidUntil != "" {
		until, err := utils.ParseDate(req.ValidUntil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		coupon.ValidUntil = &until
	}

	if err := s.repo.Coupon().Create(ctx, coupon); err != nil {
		return nil, err
	}
	return dto.FromCoupon(coupon), nil
}

func (s *RoomService) ListCoupons(ctx context.Context, tenantID string) ([]dto.CouponResponse, error) {
	coupons, err := s.repo.Coupon().List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return dto.FromCoupons(coupons), nil
}

func (s *RoomService) DeleteCoupon(ctx context.Context, tenantID, id string) error {
	return s.repo.Coupon().Delete(ctx, tenantID, id)
}

func (s *RoomService) CreateAddon(ctx context.Context, tenantID string, req dto.CreateAddonRequest) (*dto.AddonResponse, error) {
	addon := &domain.Addon{
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		PerNight:    req.PerNight,
		Active:      true,
	}
	if err := s.repo.Addon().Create(ctx, addon); err != nil {
		return nil, err
	}
	return dto.FromAddon(addon), nil
}

func (s *RoomService) ListAddons(ctx context.Context, tenantID string) ([]dto.AddonResponse, error) {
	addons, err := s.repo.Addon().List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return dto.FromAddons(addons), nil
}

func (s *RoomService) DeleteAddon(ctx context.Context, tenantID, id string) error {
	return s.repo.Addon().Delete(ctx, tenantID, id)
}
