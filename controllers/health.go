package controllers

import (
	"context"
	"log"
	"net/http"

	"go-booking/utils"
)

// HealthController reports whether the server and its store are reachable
type HealthController struct {
	Store string
	Ping  func(ctx context.Context) error
}

// NewHealthController creates a HealthController. ping may be nil when
// the store has nothing to check.
func NewHealthController(store string, ping func(ctx context.Context) error) *HealthController {
	return &HealthController{Store: store, Ping: ping}
}

// Health answers with the store status
func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if hc.Ping != nil {
		ctx, cancel := requestContext(r)
		defer cancel()
		if err := hc.Ping(ctx); err != nil {
			log.Printf("health check: %v", err)
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Database unreachable")
			return
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok", "store": hc.Store})
}
