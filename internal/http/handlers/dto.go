package handlers

import "time"

type OrderRequest struct {
	Status      string     `json:"status"`
	Amount      float64    `json:"amount"`
	CustomerID  int        `json:"customer_id"`
	MerchantID  int        `json:"merchant_id"`
	CaptainID   *int       `json:"captain_id,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type CaptainRequest struct {
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	IsActive        bool    `json:"is_active"`
	IsAvailable     bool    `json:"is_available"`
	VehicleType     string  `json:"vehicle_type"`
	AverageRating   float64 `json:"average_rating"`
	TotalDeliveries int     `json:"total_deliveries"`
	SuccessRate     int     `json:"success_rate"`
}

// CaptainCard is the per-captain display record: rating formatted to one
// decimal and success rate as an integer percentage, both passed through
// from the backend unchanged.
type CaptainCard struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	IsActive        bool   `json:"is_active"`
	IsAvailable     bool   `json:"is_available"`
	VehicleType     string `json:"vehicle_type"`
	AverageRating   string `json:"average_rating"`
	TotalDeliveries int    `json:"total_deliveries"`
	SuccessRate     int    `json:"success_rate"`
}

type CustomerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	City     string `json:"city,omitempty"`
	IsActive bool   `json:"is_active"`
}

type MerchantRequest struct {
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	IsActive       bool    `json:"is_active"`
	CommissionRate float64 `json:"commission_rate"`
	Category       string  `json:"category,omitempty"`
}

type ProductRequest struct {
	MerchantID int     `json:"merchant_id"`
	Name       string  `json:"name"`
	Status     string  `json:"status"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
}

type ProductResponse struct {
	ID         int     `json:"id"`
	MerchantID int     `json:"merchant_id"`
	Name       string  `json:"name"`
	Status     string  `json:"status"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	LowStock   bool    `json:"low_stock,omitempty"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
