package routes

import (
	"net/http"

	"go-booking/controllers"
	"go-booking/middleware"
	"go-booking/utils"

	"github.com/gorilla/mux"
)

// AuthPaths are the credential endpoints that get the strict rate limit
var AuthPaths = []string{"/api/register", "/api/login", "/api/register-admin", "/api/login-admin"}

// Controllers bundles every controller the router dispatches to
type Controllers struct {
	Auth      *controllers.AuthController
	Shops     *controllers.ShopController
	Catalog   *controllers.CatalogController
	Bookings  *controllers.BookingController
	Reviews   *controllers.ReviewController
	Dashboard *controllers.DashboardController
	Health    *controllers.HealthController
}

func authenticated(h http.HandlerFunc) http.Handler {
	return middleware.AuthMiddleware(h)
}

func adminOnly(h http.HandlerFunc) http.Handler {
	return middleware.AuthMiddleware(middleware.AdminMiddleware(h))
}

// RegisterRoutes sets up all the routes for the application under /api
func RegisterRoutes(router *mux.Router, c Controllers) {
	api := router.PathPrefix("/api").Subrouter()

	// Health
	api.HandleFunc("/health", c.Health.Health).Methods("GET")
	api.HandleFunc("/connected", c.Health.Health).Methods("GET")

	// Public auth routes
	api.HandleFunc("/register", c.Auth.Register).Methods("POST")
	api.HandleFunc("/login", c.Auth.Login).Methods("POST")
	api.HandleFunc("/register-admin", c.Auth.RegisterAdmin).Methods("POST")
	api.HandleFunc("/login-admin", c.Auth.LoginAdmin).Methods("POST")

	// Shop routes; /shops/mine must come before /shops/{id}
	api.HandleFunc("/shops", c.Shops.GetShops).Methods("GET")
	api.Handle("/shops", adminOnly(c.Shops.CreateShop)).Methods("POST")
	api.Handle("/shops/mine", adminOnly(c.Shops.GetMyShop)).Methods("GET")
	api.HandleFunc("/shops/{id}", c.Shops.GetShopByID).Methods("GET")
	api.Handle("/shops/{id}", adminOnly(c.Shops.DeleteShop)).Methods("DELETE")

	// Service routes
	api.HandleFunc("/services/{shopId}", c.Catalog.GetServices).Methods("GET")
	api.Handle("/services", adminOnly(c.Catalog.CreateService)).Methods("POST")
	api.Handle("/services/{id}", adminOnly(c.Catalog.DeleteService)).Methods("DELETE")

	// Booking routes
	api.Handle("/bookings", authenticated(c.Bookings.CreateBooking)).Methods("POST")
	api.Handle("/bookings", authenticated(c.Bookings.GetBookings)).Methods("GET")
	api.Handle("/bookings/{id}/status", adminOnly(c.Bookings.UpdateBookingStatus)).Methods("PUT")

	// Review routes
	api.HandleFunc("/reviews/{shopId}", c.Reviews.GetReviews).Methods("GET")
	api.Handle("/reviews", authenticated(c.Reviews.CreateReview)).Methods("POST")

	// Admin routes
	api.Handle("/admin/dashboard", adminOnly(c.Dashboard.GetDashboard)).Methods("GET")

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithError(w, http.StatusNotFound, "Route not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
}
