package controllers

import (
	"net/http"

	"go-booking/services"
	"go-booking/utils"
)

// DashboardController serves the admin dashboard
type DashboardController struct {
	Reports *services.ReportService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(reports *services.ReportService) *DashboardController {
	return &DashboardController{Reports: reports}
}

// GetDashboard returns the calling admin's shop statistics (admin only)
func (dc *DashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()

	report, err := dc.Reports.Dashboard(ctx, identity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}
