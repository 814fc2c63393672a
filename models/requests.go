package models

// RegisterRequest is the body of POST /register
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest is the body of POST /login and POST /login-admin
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminRegisterRequest is the body of POST /register-admin
type AdminRegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	SecretKey string `json:"secretKey" validate:"required"`
}

// CreateShopRequest is the body of POST /shops
type CreateShopRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Location    string `json:"location" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Image       string `json:"image" validate:"omitempty,url"`
}

// AvailabilityRequest is the optional availability window of a new service
type AvailabilityRequest struct {
	StartTime string `json:"startTime" validate:"omitempty,hhmm"`
	EndTime   string `json:"endTime" validate:"omitempty,hhmm"`
}

// CreateServiceRequest is the body of POST /services
type CreateServiceRequest struct {
	Title        string               `json:"title" validate:"required,max=120"`
	Description  string               `json:"description" validate:"max=2000"`
	Price        *float64             `json:"price" validate:"required,gte=0"`
	Availability *AvailabilityRequest `json:"availability"`
}

// CreateBookingRequest is the body of POST /bookings
type CreateBookingRequest struct {
	ServiceID string `json:"serviceId" validate:"required,mongodb"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required,hhmm"`
}

// UpdateBookingStatusRequest is the body of PUT /bookings/{id}/status
type UpdateBookingStatusRequest struct {
	Status       BookingStatus `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
	AdminComment *string       `json:"adminComment" validate:"omitempty,max=1000"`
}

// CreateReviewRequest is the body of POST /reviews
type CreateReviewRequest struct {
	ShopID  string `json:"shopId" validate:"required,mongodb"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}
