package services

import (
	"testing"

	"go-booking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAverageRating(t *testing.T) {
	assert.Nil(t, AverageRating(models.RatingSummary{}))

	avg := AverageRating(models.RatingSummary{Count: 3, Sum: 13})
	require.NotNil(t, avg)
	assert.InDelta(t, 4.3333, *avg, 0.001)

	rounded := roundRating(avg)
	require.NotNil(t, rounded)
	assert.Equal(t, 4.3, *rounded)
	assert.Nil(t, roundRating(nil))
}

func TestRankShops(t *testing.T) {
	detail := func(name string) models.ShopDetail {
		return models.ShopDetail{Shop: models.Shop{ID: primitive.NewObjectID(), Name: name}}
	}
	unratedA, good, unratedB, best, tieGood := detail("unrated-a"), detail("good"), detail("unrated-b"), detail("best"), detail("tie-good")

	summaries := map[primitive.ObjectID]models.RatingSummary{
		good.ID:    {ShopID: good.ID, Count: 2, Sum: 8},
		best.ID:    {ShopID: best.ID, Count: 1, Sum: 5},
		tieGood.ID: {ShopID: tieGood.ID, Count: 1, Sum: 4},
	}

	ranked := RankShops([]models.ShopDetail{unratedA, good, unratedB, best, tieGood}, summaries)

	names := make([]string, 0, len(ranked))
	for _, l := range ranked {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"best", "good", "tie-good", "unrated-a", "unrated-b"}, names)

	assert.Equal(t, 2, ranked[1].ReviewCount)
	require.NotNil(t, ranked[1].AverageRating)
	assert.Equal(t, 4.0, *ranked[1].AverageRating)
	assert.Nil(t, ranked[3].AverageRating)
	assert.Zero(t, ranked[3].ReviewCount)
}

func TestRankShopsEmpty(t *testing.T) {
	ranked := RankShops(nil, nil)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestTopServices(t *testing.T) {
	cut := models.Service{ID: primitive.NewObjectID(), Title: "Haircut"}
	nails := models.Service{ID: primitive.NewObjectID(), Title: "Nails"}
	spa := models.Service{ID: primitive.NewObjectID(), Title: "Spa"}
	massage := models.Service{ID: primitive.NewObjectID(), Title: "Massage"}
	services := servicesByID([]models.Service{cut, nails, spa, massage})

	book := func(s models.Service) models.Booking { return models.Booking{ServiceID: s.ID} }
	bookings := []models.Booking{
		book(nails), book(spa), book(cut), book(cut), book(massage),
		book(spa), book(cut), {ServiceID: primitive.NewObjectID()},
	}

	top := TopServices(bookings, services, TopServicesLimit)
	assert.Equal(t, []models.ServiceCount{
		{Name: "Haircut", Count: 3},
		{Name: "Spa", Count: 2},
		{Name: "Nails", Count: 1},
	}, top)

	assert.Empty(t, TopServices(nil, services, TopServicesLimit))
	assert.NotNil(t, TopServices(nil, services, TopServicesLimit))
}

func TestOrderServices(t *testing.T) {
	a := models.Service{ID: primitive.NewObjectID(), Title: "a"}
	b := models.Service{ID: primitive.NewObjectID(), Title: "b"}

	ordered := orderServices([]primitive.ObjectID{b.ID, primitive.NewObjectID(), a.ID}, []models.Service{a, b})
	assert.Equal(t, []models.Service{b, a}, ordered)
}
