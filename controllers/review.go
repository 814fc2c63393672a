package controllers

import (
	"net/http"

	"go-booking/models"
	"go-booking/services"
	"go-booking/utils"

	"github.com/gorilla/mux"
)

// ReviewController handles shop reviews
type ReviewController struct {
	Reviews *services.ReviewService
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

// CreateReview posts a review for a shop the caller completed a booking at
func (rc *ReviewController) CreateReview(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}
	var req models.CreateReviewRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()

	review, err := rc.Reviews.CreateReview(ctx, identity, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, review)
}

// GetReviews lists a shop's reviews, newest first
func (rc *ReviewController) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	reviews, err := rc.Reviews.ListReviews(ctx, mux.Vars(r)["shopId"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, reviews)
}
