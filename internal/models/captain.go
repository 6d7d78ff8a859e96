package models

// Vehicle types a captain can register with.
const (
	VehicleMotorcycle = "motorcycle"
	VehicleCar        = "car"
	VehicleBicycle    = "bicycle"
)

// Captain represents a delivery captain. AverageRating and SuccessRate are
// pre-aggregated by the backend and passed through unchanged.
type Captain struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	IsActive        bool    `json:"is_active"`
	IsAvailable     bool    `json:"is_available"`
	VehicleType     string  `json:"vehicle_type"`
	AverageRating   float64 `json:"average_rating"`
	TotalDeliveries int     `json:"total_deliveries"`
	SuccessRate     int     `json:"success_rate"`
}

func (c Captain) SearchFields() []string {
	return []string{c.Name, c.Phone, c.VehicleType}
}
