package models

import "time"

// Merchant represents a merchant (store/restaurant) account.
// An empty Category is reported under the "unspecified" bucket.
type Merchant struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	IsActive       bool      `json:"is_active"`
	CommissionRate float64   `json:"commission_rate"`
	Category       string    `json:"category,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (m Merchant) SearchFields() []string {
	return []string{m.Name, m.Phone, m.Category}
}
