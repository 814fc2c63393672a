package controllers

import (
	"net/http"

	"go-booking/models"
	"go-booking/services"
	"go-booking/utils"

	"github.com/gorilla/mux"
)

// CatalogController handles the services offered by shops
type CatalogController struct {
	Catalog *services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

// GetServices lists the services of a shop
func (cc *CatalogController) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	list, err := cc.Catalog.ListServices(ctx, mux.Vars(r)["shopId"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// CreateService adds a service to the calling admin's shop (admin only)
func (cc *CatalogController) CreateService(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}
	var req models.CreateServiceRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()

	service, err := cc.Catalog.CreateService(ctx, identity, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, service)
}

// DeleteService removes a service of the calling admin's shop (admin only)
func (cc *CatalogController) DeleteService(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()

	if err := cc.Catalog.DeleteService(ctx, identity, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Service deleted successfully"})
}
