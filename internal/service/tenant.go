package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vilohq/vilo-api/internal/api/dto"
	"github.com/vilohq/vilo-api/internal/domain"
	"github.com/vilohq/vilo-api/internal/repository"
	"github.com/vilohq/vilo-api/pkg/logger"
)

type TenantService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewTenantService(repo repository.Repository, logger *logger.Logger) *TenantService {
	return &TenantService{repo: repo, logger: logger}
}

func (s *TenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	if existing, err := s.repo.Tenant().GetBySlug(ctx, req.Slug); err == nil && existing != nil {
		return nil, ErrTenantExists
	}

	tenant, err := s.repo.Tenant().Create(ctx, req.ToTenant())
	if err != nil {
		return nil, err
	}

	s.syncSearchIndex(ctx, tenant.ID)
	return dto.FromTenant(tenant), nil
}

func (s *TenantService) GetByID(ctx context.Context, id string) (*dto.TenantResponse, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return dto.FromTenant(tenant), nil
}

func (s *TenantService) Update(ctx context.Context, id string, req dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.Description != nil {
		tenant.Description = *req.Description
	}
	if req.Currency != nil {
		tenant.Currency = *req.Currency
	}
	if req.Locale != nil {
		tenant.Locale = *req.Locale
	}
	if req.Country != nil {
		tenant.Country = *req.Country
	}
	if req.City != nil {
		tenant.City = *req.City
	}
	if req.Address != nil {
		tenant.Address = *req.Address
	}
	if req.Latitude != nil {
		tenant.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		tenant.Longitude = *req.Longitude
	}
	if req.Categories != nil {
		tenant.Categories = req.Categories
	}
	if req.Discoverable != nil {
		tenant.Discoverable = *req.Discoverable
	}

	if err := s.repo.Tenant().Update(ctx, tenant); err != nil {
		return nil, err
	}

	s.syncSearchIndex(ctx, tenant.ID)
	return dto.FromTenant(tenant), nil
}

func (s *TenantService) List(ctx context.Context) ([]dto.TenantResponse, error) {
	tenants, err := s.repo.Tenant().List(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = *dto.FromTenant(&tenants[i])
	}
	return responses, nil
}

// syncSearchIndex mirrors the tenant's discovery card into the search index.
// Best-effort; the database stays the source of truth.
func (s *TenantService) syncSearchIndex(ctx context.Context, tenantID string) {
	tenant, err := s.repo.Tenant().GetByID(ctx, tenantID)
	if err != nil {
		s.logger.Errorf("Failed to reload tenant %s for index sync: %v", tenantID, err)
		return
	}

	if !tenant.Discoverable || tenant.SubscriptionStatus == domain.SubscriptionDisabled {
		if err := s.repo.PropertySearch().Delete(ctx, tenant.ID); err != nil {
			s.logger.Errorf("Failed to remove tenant %s from search index: %v", tenant.ID, err)
		}
		return
	}

	summary, err := s.repo.Discovery().GetSummaryBySlug(ctx, tenant.Slug)
	if err != nil {
		s.logger.Errorf("Failed to load property summary for tenant %s: %v", tenant.ID, err)
		return
	}
	if err := s.repo.PropertySearch().Index(ctx, summary); err != nil {
		s.logger.Errorf("Failed to index property for tenant %s: %v", tenant.ID, err)
	}
}
