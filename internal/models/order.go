package models

import "time"

// Order statuses as stored by the backend.
const (
	OrderPending    = "pending"
	OrderInProgress = "in_progress"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// Order represents a delivery order.
type Order struct {
	ID          int        `json:"id"`
	Status      string     `json:"status"`
	Amount      float64    `json:"amount"`
	CustomerID  int        `json:"customer_id"`
	MerchantID  int        `json:"merchant_id"`
	CaptainID   *int       `json:"captain_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// SearchFields lists the fields the client-side search predicate scans.
func (o Order) SearchFields() []string {
	return []string{o.Status}
}
