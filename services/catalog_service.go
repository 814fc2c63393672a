package services

import (
	"context"
	"strings"

	"go-booking/models"
)

// CatalogService manages the services a shop offers
type CatalogService struct {
	stores Stores
	cache  ShopListingCache
}

// NewCatalogService creates a CatalogService. cache may be nil.
func NewCatalogService(stores Stores, cache ShopListingCache) *CatalogService {
	return &CatalogService{stores: stores, cache: cacheOrNoop(cache)}
}

// CreateService adds a service to the caller's shop. A missing
// availability window defaults to 09:00-17:00.
func (s *CatalogService) CreateService(ctx context.Context, caller models.Identity, req models.CreateServiceRequest) (*models.Service, error) {
	admin, err := requireAdmin(caller)
	if err != nil {
		return nil, err
	}
	shop, err := s.stores.Shops.FindByAdmin(ctx, admin.AdminID)
	if err != nil {
		return nil, notFound(err, "You must create a shop first")
	}

	availability := models.Availability{StartTime: models.DefaultStartTime, EndTime: models.DefaultEndTime}
	if req.Availability != nil {
		if req.Availability.StartTime != "" {
			availability.StartTime = req.Availability.StartTime
		}
		if req.Availability.EndTime != "" {
			availability.EndTime = req.Availability.EndTime
		}
	}
	start, okStart := models.ClockMinutes(availability.StartTime)
	end, okEnd := models.ClockMinutes(availability.EndTime)
	if !okStart || !okEnd {
		return nil, newError(ErrValidation, "Availability times must be formatted as HH:MM")
	}
	if start > end {
		return nil, newError(ErrValidation, "Availability start time must not be after end time")
	}

	var price float64
	if req.Price != nil {
		price = *req.Price
	}
	service := &models.Service{
		ShopID:       shop.ID,
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		Price:        price,
		Availability: availability,
	}
	if err := s.stores.Services.Create(ctx, service); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return service, nil
}

// DeleteService removes a service from the caller's shop
func (s *CatalogService) DeleteService(ctx context.Context, caller models.Identity, serviceID string) error {
	admin, err := requireAdmin(caller)
	if err != nil {
		return err
	}
	id, err := parseID(serviceID, "service")
	if err != nil {
		return err
	}

	service, err := s.stores.Services.FindByID(ctx, id)
	if err != nil {
		return notFound(err, "Service not found")
	}
	shop, err := s.stores.Shops.FindByID(ctx, service.ShopID)
	if err != nil {
		return notFound(err, "Shop not found")
	}
	if shop.AdminID != admin.AdminID {
		return newError(ErrForbidden, "You can only delete services of your own shop")
	}

	if err := s.stores.Services.Delete(ctx, service.ID); err != nil {
		return notFound(err, "Service not found")
	}
	s.cache.Invalidate(ctx)
	return nil
}

// ListServices returns every service of a shop
func (s *CatalogService) ListServices(ctx context.Context, shopID string) ([]models.Service, error) {
	id, err := parseID(shopID, "shop")
	if err != nil {
		return nil, err
	}
	return s.stores.Services.FindByShop(ctx, id)
}
