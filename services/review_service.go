package services

import (
	"context"
	"strings"
	"time"

	"go-booking/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewService gates reviews on completed bookings
type ReviewService struct {
	stores Stores
	cache  ShopListingCache
	now    func() time.Time
}

// NewReviewService creates a ReviewService. cache may be nil.
func NewReviewService(stores Stores, cache ShopListingCache) *ReviewService {
	return &ReviewService{stores: stores, cache: cacheOrNoop(cache), now: time.Now}
}

// CreateReview posts the caller's review of a shop. The caller needs at
// least one completed booking for a service of that shop. Otherwise the
// error kind tells apart "booked but not completed" (ErrReviewNotCompleted)
// from "never booked here" (ErrReviewNoBooking).
func (s *ReviewService) CreateReview(ctx context.Context, caller models.Identity, req models.CreateReviewRequest) (*models.Review, error) {
	user, err := requireUser(caller, "Admins cannot post reviews")
	if err != nil {
		return nil, err
	}
	shopID, err := parseID(req.ShopID, "shop")
	if err != nil {
		return nil, err
	}
	if req.Rating < models.MinRating || req.Rating > models.MaxRating {
		return nil, newError(ErrValidation, "Rating must be between %d and %d", models.MinRating, models.MaxRating)
	}
	if _, err := s.stores.Shops.FindByID(ctx, shopID); err != nil {
		return nil, notFound(err, "Shop not found")
	}

	eligible, err := s.hasBookingAt(ctx, user, shopID, models.BookingCompleted)
	if err != nil {
		return nil, err
	}
	if !eligible {
		booked, err := s.hasBookingAt(ctx, user, shopID)
		if err != nil {
			return nil, err
		}
		if booked {
			return nil, newError(ErrReviewNotCompleted, "%s", MsgReviewNotCompleted)
		}
		return nil, newError(ErrReviewNoBooking, "%s", MsgReviewNoBooking)
	}

	review := &models.Review{
		UserID:    user.UserID,
		ShopID:    shopID,
		Rating:    req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
		Timestamp: s.now(),
	}
	if err := s.stores.Reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return review, nil
}

// ListReviews returns a shop's reviews, newest first, with author names
func (s *ReviewService) ListReviews(ctx context.Context, shopID string) ([]models.ReviewView, error) {
	id, err := parseID(shopID, "shop")
	if err != nil {
		return nil, err
	}
	reviews, err := s.stores.Reviews.FindByShop(ctx, id)
	if err != nil {
		return nil, err
	}

	users, err := s.stores.Users.FindByIDs(ctx, uniqueIDs(reviews, func(r models.Review) primitive.ObjectID { return r.UserID }))
	if err != nil {
		return nil, err
	}
	names := make(map[primitive.ObjectID]models.UserSummary, len(users))
	for _, u := range users {
		names[u.ID] = models.UserSummary{ID: u.ID, Name: u.Name}
	}

	views := make([]models.ReviewView, 0, len(reviews))
	for _, r := range reviews {
		view := models.ReviewView{Review: r}
		if u, ok := names[r.UserID]; ok {
			view.User = &u
		}
		views = append(views, view)
	}
	return views, nil
}

// hasBookingAt reports whether the user has a booking, restricted to the
// given statuses, for any service of the shop
func (s *ReviewService) hasBookingAt(ctx context.Context, user models.UserIdentity, shopID primitive.ObjectID, statuses ...models.BookingStatus) (bool, error) {
	bookings, err := s.stores.Bookings.FindByUser(ctx, user.UserID, statuses...)
	if err != nil {
		return false, err
	}
	if len(bookings) == 0 {
		return false, nil
	}
	shops, err := bookedShops(ctx, s.stores, bookings)
	if err != nil {
		return false, err
	}
	return shops[shopID], nil
}
