package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"go-booking/middleware"
	"go-booking/models"
	"go-booking/services"
	"go-booking/utils"
)

const requestTimeout = 5 * time.Second

// maxBodyBytes bounds every JSON request body
const maxBodyBytes = 1 << 20

func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), requestTimeout)
}

// decodeRequest reads a JSON body into dst and runs its validate tags.
// It writes the 400 response itself and reports whether to continue.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return false
	}
	if err := utils.ValidateStruct(dst); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// caller returns the authenticated identity or writes a 401
func caller(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return identity, ok
}

// writeServiceError maps a service error to its HTTP status. Anything that
// is not a *services.Error is logged and reported as a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var serr *services.Error
	if !errors.As(err, &serr) {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Printf("%s %s: timed out: %v", r.Method, r.URL.Path, err)
			utils.RespondWithError(w, http.StatusGatewayTimeout, "Request timed out")
			return
		}
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithError(w, statusFor(serr.Kind), serr.Message)
}

func statusFor(kind error) int {
	switch kind {
	case services.ErrValidation:
		return http.StatusBadRequest
	case services.ErrUnauthorized:
		return http.StatusUnauthorized
	case services.ErrForbidden, services.ErrReviewNotCompleted, services.ErrReviewNoBooking:
		return http.StatusForbidden
	case services.ErrNotFound:
		return http.StatusNotFound
	case services.ErrConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
