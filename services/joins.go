package services

import (
	"context"
	"errors"

	"go-booking/models"
	"go-booking/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// shopDetail populates the shop's services in serviceIds order
func shopDetail(ctx context.Context, stores Stores, shop models.Shop) (*models.ShopDetail, error) {
	services, err := stores.Services.FindByIDs(ctx, shop.ServiceIDs)
	if err != nil {
		return nil, err
	}
	return &models.ShopDetail{Shop: shop, Services: orderServices(shop.ServiceIDs, services)}, nil
}

// shopBookings returns the bookings for every service of the shop, ordered
// by date and time, each joined with its service and the booking user
func shopBookings(ctx context.Context, stores Stores, shopID primitive.ObjectID) ([]models.BookingView, error) {
	services, err := stores.Services.FindByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return []models.BookingView{}, nil
	}
	serviceIDs := make([]primitive.ObjectID, 0, len(services))
	for _, s := range services {
		serviceIDs = append(serviceIDs, s.ID)
	}

	bookings, err := stores.Bookings.FindByServices(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	users, err := stores.Users.FindByIDs(ctx, uniqueIDs(bookings, func(b models.Booking) primitive.ObjectID { return b.UserID }))
	if err != nil {
		return nil, err
	}
	usersByID := make(map[primitive.ObjectID]models.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	byID := servicesByID(services)
	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := models.BookingView{Booking: b}
		if s, ok := byID[b.ServiceID]; ok {
			view.Service = &s
		}
		if u, ok := usersByID[b.UserID]; ok {
			view.User = &models.UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
		}
		views = append(views, view)
	}
	return views, nil
}

// userBookings returns the user's bookings joined with service and the
// service's shop name and location
func userBookings(ctx context.Context, stores Stores, userID primitive.ObjectID) ([]models.BookingView, error) {
	bookings, err := stores.Bookings.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	services, err := stores.Services.FindByIDs(ctx, uniqueIDs(bookings, func(b models.Booking) primitive.ObjectID { return b.ServiceID }))
	if err != nil {
		return nil, err
	}
	byID := servicesByID(services)

	shops := make(map[primitive.ObjectID]*models.ShopSummary)
	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := models.BookingView{Booking: b}
		if s, ok := byID[b.ServiceID]; ok {
			view.Service = &s
			summary, seen := shops[s.ShopID]
			if !seen {
				shop, err := stores.Shops.FindByID(ctx, s.ShopID)
				if err != nil && !errors.Is(err, repositories.ErrNotFound) {
					return nil, err
				}
				if err == nil {
					sum := shop.Summary()
					summary = &sum
				}
				shops[s.ShopID] = summary
			}
			view.Shop = summary
		}
		views = append(views, view)
	}
	return views, nil
}

// bookedShops returns the set of shop IDs the bookings' services belong to
func bookedShops(ctx context.Context, stores Stores, bookings []models.Booking) (map[primitive.ObjectID]bool, error) {
	services, err := stores.Services.FindByIDs(ctx, uniqueIDs(bookings, func(b models.Booking) primitive.ObjectID { return b.ServiceID }))
	if err != nil {
		return nil, err
	}
	shops := make(map[primitive.ObjectID]bool, len(services))
	for _, s := range services {
		shops[s.ShopID] = true
	}
	return shops, nil
}

func uniqueIDs[T any](items []T, key func(T) primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]bool, len(items))
	ids := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		id := key(item)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}
