package services

import (
	"math"
	"sort"

	"go-booking/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TopServicesLimit is how many services the admin dashboard ranks
const TopServicesLimit = 3

// AverageRating returns the mean rating, or nil when there are no reviews
// so that an unrated shop is never shown with a numeric score
func AverageRating(summary models.RatingSummary) *float64 {
	if summary.Count == 0 {
		return nil
	}
	avg := float64(summary.Sum) / float64(summary.Count)
	return &avg
}

// roundRating rounds a rating to one decimal place, keeping nil as nil
func roundRating(avg *float64) *float64 {
	if avg == nil {
		return nil
	}
	rounded := math.Round(*avg*10) / 10
	return &rounded
}

// RankShops annotates each shop with its rating aggregates and orders the
// result by average rating, highest first. Unrated shops come after every
// rated shop. Ties keep the input order.
func RankShops(shops []models.ShopDetail, summaries map[primitive.ObjectID]models.RatingSummary) []models.ShopListing {
	listings := make([]models.ShopListing, 0, len(shops))
	for _, shop := range shops {
		summary := summaries[shop.ID]
		listings = append(listings, models.ShopListing{
			ShopDetail:    shop,
			AverageRating: AverageRating(summary),
			ReviewCount:   summary.Count,
		})
	}

	sort.SliceStable(listings, func(i, j int) bool {
		a, b := listings[i].AverageRating, listings[j].AverageRating
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return *a > *b
	})
	return listings
}

// TopServices counts bookings per service title and returns the `limit`
// most booked, most first. Ties keep the order in which titles were first
// seen in bookings. Bookings whose service is unknown are skipped.
func TopServices(bookings []models.Booking, services map[primitive.ObjectID]models.Service, limit int) []models.ServiceCount {
	counts := []models.ServiceCount{}
	index := make(map[string]int)
	for _, b := range bookings {
		service, ok := services[b.ServiceID]
		if !ok {
			continue
		}
		i, seen := index[service.Title]
		if !seen {
			i = len(counts)
			index[service.Title] = i
			counts = append(counts, models.ServiceCount{Name: service.Title})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

// orderServices returns the services in the order of ids, dropping IDs
// that did not resolve
func orderServices(ids []primitive.ObjectID, services []models.Service) []models.Service {
	byID := servicesByID(services)
	ordered := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			ordered = append(ordered, s)
		}
	}
	return ordered
}

func servicesByID(services []models.Service) map[primitive.ObjectID]models.Service {
	byID := make(map[primitive.ObjectID]models.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}
	return byID
}
