// Package memstore holds in-memory implementations of the service stores.
// They back the test suites and the STORE_DRIVER=memory development mode,
// and mirror the MongoDB repositories' semantics: unique emails, one shop
// per admin, insertion order for unsorted queries.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"go-booking/models"
	"go-booking/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store bundles one of each in-memory store
type Store struct {
	Users    *UserStore
	Admins   *AdminStore
	Shops    *ShopStore
	Services *ServiceStore
	Bookings *BookingStore
	Reviews  *ReviewStore
}

// New returns empty stores. Services share the shop store so that
// creating or deleting a service updates the shop's serviceIds.
func New() *Store {
	shops := &ShopStore{}
	return &Store{
		Users:    &UserStore{},
		Admins:   &AdminStore{},
		Shops:    shops,
		Services: &ServiceStore{shops: shops},
		Bookings: &BookingStore{},
		Reviews:  &ReviewStore{},
	}
}

func newID(id *primitive.ObjectID) {
	if id.IsZero() {
		*id = primitive.NewObjectID()
	}
}

func contains(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// UserStore keeps users in memory
type UserStore struct {
	mu    sync.RWMutex
	users []models.User
}

func (s *UserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	newID(&user.ID)
	s.users = append(s.users, *user)
	return nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *UserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *UserStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found := []models.User{}
	for _, u := range s.users {
		if contains(ids, u.ID) {
			found = append(found, u)
		}
	}
	return found, nil
}

// AdminStore keeps admins in memory
type AdminStore struct {
	mu     sync.RWMutex
	admins []models.Admin
}

func (s *AdminStore) Create(_ context.Context, admin *models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		if a.Email == admin.Email {
			return repositories.ErrDuplicate
		}
	}
	newID(&admin.ID)
	s.admins = append(s.admins, *admin)
	return nil
}

func (s *AdminStore) FindByEmail(_ context.Context, email string) (*models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.admins {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// ShopStore keeps shops in memory
type ShopStore struct {
	mu    sync.RWMutex
	shops []models.Shop
}

func copyShop(shop models.Shop) *models.Shop {
	shop.ServiceIDs = append([]primitive.ObjectID{}, shop.ServiceIDs...)
	return &shop
}

func (s *ShopStore) Create(_ context.Context, shop *models.Shop) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.shops {
		if existing.AdminID == shop.AdminID {
			return repositories.ErrDuplicate
		}
	}
	newID(&shop.ID)
	if shop.ServiceIDs == nil {
		shop.ServiceIDs = []primitive.ObjectID{}
	}
	s.shops = append(s.shops, *copyShop(*shop))
	return nil
}

func (s *ShopStore) find(match func(models.Shop) bool) (*models.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, shop := range s.shops {
		if match(shop) {
			return copyShop(shop), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *ShopStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Shop, error) {
	return s.find(func(shop models.Shop) bool { return shop.ID == id })
}

func (s *ShopStore) FindByAdmin(_ context.Context, adminID primitive.ObjectID) (*models.Shop, error) {
	return s.find(func(shop models.Shop) bool { return shop.AdminID == adminID })
}

func (s *ShopStore) FindAll(context.Context) ([]models.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]models.Shop, 0, len(s.shops))
	for _, shop := range s.shops {
		all = append(all, *copyShop(shop))
	}
	return all, nil
}

func (s *ShopStore) IncrementVisits(_ context.Context, id primitive.ObjectID) (*models.Shop, error) {
	return s.update(id, func(shop *models.Shop) { shop.Visits++ })
}

func (s *ShopStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, shop := range s.shops {
		if shop.ID == id {
			s.shops = append(s.shops[:i], s.shops[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (s *ShopStore) update(id primitive.ObjectID, fn func(*models.Shop)) (*models.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.shops {
		if s.shops[i].ID == id {
			fn(&s.shops[i])
			return copyShop(s.shops[i]), nil
		}
	}
	return nil, repositories.ErrNotFound
}

// ServiceStore keeps services in memory
type ServiceStore struct {
	mu       sync.RWMutex
	services []models.Service
	shops    *ShopStore
}

func (s *ServiceStore) Create(_ context.Context, service *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	newID(&service.ID)
	if _, err := s.shops.update(service.ShopID, func(shop *models.Shop) {
		shop.ServiceIDs = append(shop.ServiceIDs, service.ID)
	}); err != nil {
		return err
	}
	s.services = append(s.services, *service)
	return nil
}

func (s *ServiceStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, service := range s.services {
		if service.ID != id {
			continue
		}
		s.services = append(s.services[:i], s.services[i+1:]...)
		_, _ = s.shops.update(service.ShopID, func(shop *models.Shop) {
			kept := shop.ServiceIDs[:0]
			for _, sid := range shop.ServiceIDs {
				if sid != id {
					kept = append(kept, sid)
				}
			}
			shop.ServiceIDs = kept
		})
		return nil
	}
	return repositories.ErrNotFound
}

func (s *ServiceStore) DeleteByShop(_ context.Context, shopID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.services[:0]
	for _, service := range s.services {
		if service.ShopID != shopID {
			kept = append(kept, service)
		}
	}
	s.services = kept
	return nil
}

func (s *ServiceStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, service := range s.services {
		if service.ID == id {
			return &service, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *ServiceStore) FindByShop(_ context.Context, shopID primitive.ObjectID) ([]models.Service, error) {
	return s.filter(func(service models.Service) bool { return service.ShopID == shopID }), nil
}

func (s *ServiceStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Service, error) {
	return s.filter(func(service models.Service) bool { return contains(ids, service.ID) }), nil
}

func (s *ServiceStore) filter(match func(models.Service) bool) []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found := []models.Service{}
	for _, service := range s.services {
		if match(service) {
			found = append(found, service)
		}
	}
	return found
}

// BookingStore keeps bookings in memory
type BookingStore struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

func (s *BookingStore) Create(_ context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	newID(&booking.ID)
	s.bookings = append(s.bookings, *booking)
	return nil
}

func (s *BookingStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *BookingStore) UpdateStatus(_ context.Context, id primitive.ObjectID, from, to models.BookingStatus, comment *string, at time.Time) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		b := &s.bookings[i]
		if b.ID != id {
			continue
		}
		if b.Status != from {
			return nil, repositories.ErrStaleStatus
		}
		b.Status = to
		b.UpdatedAt = at
		if comment != nil {
			b.AdminComment = *comment
		}
		updated := *b
		return &updated, nil
	}
	return nil, repositories.ErrNotFound
}

func (s *BookingStore) FindByUser(_ context.Context, userID primitive.ObjectID, statuses ...models.BookingStatus) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found := []models.Booking{}
	for _, b := range s.bookings {
		if b.UserID != userID {
			continue
		}
		if len(statuses) > 0 && !hasStatus(statuses, b.Status) {
			continue
		}
		found = append(found, b)
	}
	return found, nil
}

func (s *BookingStore) FindByServices(_ context.Context, serviceIDs []primitive.ObjectID) ([]models.Booking, error) {
	s.mu.RLock()
	found := []models.Booking{}
	for _, b := range s.bookings {
		if contains(serviceIDs, b.ServiceID) {
			found = append(found, b)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].Date != found[j].Date {
			return found[i].Date < found[j].Date
		}
		return found[i].Time < found[j].Time
	})
	return found, nil
}

func hasStatus(statuses []models.BookingStatus, status models.BookingStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

// ReviewStore keeps reviews in memory
type ReviewStore struct {
	mu      sync.RWMutex
	reviews []models.Review
}

func (s *ReviewStore) Create(_ context.Context, review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	newID(&review.ID)
	s.reviews = append(s.reviews, *review)
	return nil
}

func (s *ReviewStore) FindByShop(_ context.Context, shopID primitive.ObjectID) ([]models.Review, error) {
	s.mu.RLock()
	found := []models.Review{}
	for _, r := range s.reviews {
		if r.ShopID == shopID {
			found = append(found, r)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(found, func(i, j int) bool { return found[i].Timestamp.After(found[j].Timestamp) })
	return found, nil
}

func (s *ReviewStore) SummarizeRatings(_ context.Context, shopIDs ...primitive.ObjectID) (map[primitive.ObjectID]models.RatingSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summaries := make(map[primitive.ObjectID]models.RatingSummary)
	for _, r := range s.reviews {
		if len(shopIDs) > 0 && !contains(shopIDs, r.ShopID) {
			continue
		}
		sum := summaries[r.ShopID]
		sum.ShopID = r.ShopID
		sum.Count++
		sum.Sum += r.Rating
		summaries[r.ShopID] = sum
	}
	return summaries, nil
}
