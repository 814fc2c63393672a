package models

// ServiceCount is the number of bookings made for one service title
type ServiceCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DashboardStats are the aggregates shown on an admin's dashboard
type DashboardStats struct {
	Visits        int64          `json:"visits"`
	BookingsCount int            `json:"bookingsCount"`
	AvgRating     *float64       `json:"avgRating"`
	ReviewCount   int            `json:"reviewCount"`
	TopServices   []ServiceCount `json:"topServices"`
}

// DashboardReport is the admin dashboard payload. Only HasShop is
// meaningful when the admin has not created a shop yet.
type DashboardReport struct {
	HasShop  bool            `json:"hasShop"`
	Shop     *ShopDetail     `json:"shop,omitempty"`
	Stats    *DashboardStats `json:"stats,omitempty"`
	Bookings []BookingView   `json:"bookings"`
}
