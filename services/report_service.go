package services

import (
	"context"
	"errors"

	"go-booking/models"
	"go-booking/repositories"
)

// ReportService computes the public shop ranking and admin dashboards
type ReportService struct {
	stores Stores
	cache  ShopListingCache
}

// NewReportService creates a ReportService. cache may be nil.
func NewReportService(stores Stores, cache ShopListingCache) *ReportService {
	return &ReportService{stores: stores, cache: cacheOrNoop(cache)}
}

// ListShops returns every shop with its services and rating aggregates,
// best rated first
func (s *ReportService) ListShops(ctx context.Context) ([]models.ShopListing, error) {
	if listings, ok := s.cache.Load(ctx); ok {
		return listings, nil
	}

	shops, err := s.stores.Shops.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	details := make([]models.ShopDetail, 0, len(shops))
	for _, shop := range shops {
		detail, err := shopDetail(ctx, s.stores, shop)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}

	summaries, err := s.stores.Reviews.SummarizeRatings(ctx)
	if err != nil {
		return nil, err
	}
	listings := RankShops(details, summaries)
	s.cache.Store(ctx, listings)
	return listings, nil
}

// Dashboard reports visits, bookings, ratings and the most booked
// services of the caller's shop
func (s *ReportService) Dashboard(ctx context.Context, caller models.Identity) (*models.DashboardReport, error) {
	admin, err := requireAdmin(caller)
	if err != nil {
		return nil, err
	}
	shop, err := s.stores.Shops.FindByAdmin(ctx, admin.AdminID)
	if errors.Is(err, repositories.ErrNotFound) {
		return &models.DashboardReport{HasShop: false, Bookings: []models.BookingView{}}, nil
	}
	if err != nil {
		return nil, err
	}

	detail, err := shopDetail(ctx, s.stores, *shop)
	if err != nil {
		return nil, err
	}
	bookings, err := shopBookings(ctx, s.stores, shop.ID)
	if err != nil {
		return nil, err
	}
	summaries, err := s.stores.Reviews.SummarizeRatings(ctx, shop.ID)
	if err != nil {
		return nil, err
	}
	summary := summaries[shop.ID]

	services, err := s.stores.Services.FindByShop(ctx, shop.ID)
	if err != nil {
		return nil, err
	}
	plain := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		plain = append(plain, b.Booking)
	}

	return &models.DashboardReport{
		HasShop: true,
		Shop:    detail,
		Stats: &models.DashboardStats{
			Visits:        shop.Visits,
			BookingsCount: len(bookings),
			AvgRating:     roundRating(AverageRating(summary)),
			ReviewCount:   summary.Count,
			TopServices:   TopServices(plain, servicesByID(services), TopServicesLimit),
		},
		Bookings: bookings,
	}, nil
}
