package controllers

import (
	"net/http"

	"go-booking/models"
	"go-booking/services"
	"go-booking/utils"

	"github.com/gorilla/mux"
)

// ShopController handles shop-related requests
type ShopController struct {
	Shops   *services.ShopService
	Reports *services.ReportService
}

// NewShopController creates a new ShopController
func NewShopController(shops *services.ShopService, reports *services.ReportService) *ShopController {
	return &ShopController{Shops: shops, Reports: reports}
}

// GetShops lists every shop, best rated first
func (sc *ShopController) GetShops(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	listings, err := sc.Reports.ListShops(ctx)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, listings)
}

// GetShopByID returns one shop with its services and counts the visit
func (sc *ShopController) GetShopByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	shop, err := sc.Shops.GetShop(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, shop)
}

// CreateShop opens a shop for the calling admin (admin only)
func (sc *ShopController) CreateShop(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}
	var req models.CreateShopRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()

	shop, err := sc.Shops.CreateShop(ctx, identity, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, shop)
}

// GetMyShop returns the calling admin's shop
func (sc *ShopController) GetMyShop(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()

	shop, err := sc.Shops.MyShop(ctx, identity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, shop)
}

// DeleteShop removes the calling admin's shop (admin only)
func (sc *ShopController) DeleteShop(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()

	if err := sc.Shops.DeleteShop(ctx, identity, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Shop deleted successfully"})
}
