package services

import (
	"context"
	"errors"
	"strings"

	"go-booking/models"
	"go-booking/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShopService manages shops and their visit counters
type ShopService struct {
	stores Stores
	cache  ShopListingCache
}

// NewShopService creates a ShopService. cache may be nil.
func NewShopService(stores Stores, cache ShopListingCache) *ShopService {
	return &ShopService{stores: stores, cache: cacheOrNoop(cache)}
}

// CreateShop opens the caller's shop. An admin may own only one shop.
func (s *ShopService) CreateShop(ctx context.Context, caller models.Identity, req models.CreateShopRequest) (*models.Shop, error) {
	admin, err := requireAdmin(caller)
	if err != nil {
		return nil, err
	}

	if _, err := s.stores.Shops.FindByAdmin(ctx, admin.AdminID); err == nil {
		return nil, newError(ErrConflict, "You can only create one shop.")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	shop := &models.Shop{
		Name:        strings.TrimSpace(req.Name),
		Location:    strings.TrimSpace(req.Location),
		Description: strings.TrimSpace(req.Description),
		Image:       req.Image,
		ServiceIDs:  []primitive.ObjectID{},
		AdminID:     admin.AdminID,
	}
	if err := s.stores.Shops.Create(ctx, shop); err != nil {
		// lost a race with a concurrent create for the same admin
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, newError(ErrConflict, "You can only create one shop.")
		}
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return shop, nil
}

// GetShop returns the shop with its services and counts the visit. Every
// call adds exactly one to the counter.
func (s *ShopService) GetShop(ctx context.Context, shopID string) (*models.ShopDetail, error) {
	id, err := parseID(shopID, "shop")
	if err != nil {
		return nil, err
	}
	shop, err := s.stores.Shops.IncrementVisits(ctx, id)
	if err != nil {
		return nil, notFound(err, "Shop not found")
	}
	// cached listings carry the visit count
	s.cache.Invalidate(ctx)
	return shopDetail(ctx, s.stores, *shop)
}

// MyShop returns the caller's own shop without counting a visit
func (s *ShopService) MyShop(ctx context.Context, caller models.Identity) (*models.ShopDetail, error) {
	admin, err := requireAdmin(caller)
	if err != nil {
		return nil, err
	}
	shop, err := s.stores.Shops.FindByAdmin(ctx, admin.AdminID)
	if err != nil {
		return nil, notFound(err, "You have not created a shop yet")
	}
	return shopDetail(ctx, s.stores, *shop)
}

// DeleteShop removes the caller's shop together with its services
func (s *ShopService) DeleteShop(ctx context.Context, caller models.Identity, shopID string) error {
	admin, err := requireAdmin(caller)
	if err != nil {
		return err
	}
	id, err := parseID(shopID, "shop")
	if err != nil {
		return err
	}

	shop, err := s.stores.Shops.FindByID(ctx, id)
	if err != nil {
		return notFound(err, "Shop not found")
	}
	if shop.AdminID != admin.AdminID {
		return newError(ErrForbidden, "You can only delete your own shop")
	}

	if err := s.stores.Services.DeleteByShop(ctx, shop.ID); err != nil {
		return err
	}
	if err := s.stores.Shops.Delete(ctx, shop.ID); err != nil {
		return notFound(err, "Shop not found")
	}
	s.cache.Invalidate(ctx)
	return nil
}
