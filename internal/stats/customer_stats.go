package stats

import (
	"time"

	"github.com/tawsil-app/ops-dashboard/internal/models"
)

// CustomerStats is the record shown on the customers page header.
type CustomerStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Inactive  int `json:"inactive"`
	ThisMonth int `json:"this_month"`
}

// DeriveCustomerStats recomputes customer statistics from a snapshot
// collection. ThisMonth counts registrations in the current calendar
// month and year, not a rolling window.
func DeriveCustomerStats(customers []models.Customer, now time.Time) CustomerStats {
	s := CustomerStats{Total: len(customers)}
	for _, c := range customers {
		if c.IsActive {
			s.Active++
		}
		if sameMonth(c.CreatedAt, now) {
			s.ThisMonth++
		}
	}
	s.Inactive = s.Total - s.Active
	return s
}
