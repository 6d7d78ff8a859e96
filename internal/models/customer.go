package models

import "time"

// Customer represents a customer account.
type Customer struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	City      string    `json:"city,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (c Customer) SearchFields() []string {
	return []string{c.Name, c.Phone, c.Email, c.City}
}
