package stats

import (
	"time"

	"github.com/tawsil-app/ops-dashboard/internal/models"
)

// DashboardSources holds the snapshot collections the dashboard derivation
// reads. The caller must have fetched all of them successfully; a failed
// source fetch fails the whole dashboard rather than zeroing a field, since
// a zeroed field is indistinguishable from a legitimate zero.
type DashboardSources struct {
	Orders    []models.Order
	Captains  []models.Captain
	Customers []models.Customer
}

// DashboardStats is the composite record shown on the landing page.
type DashboardStats struct {
	TotalOrders         int     `json:"total_orders"`
	PendingOrders       int     `json:"pending_orders"`
	ActiveDeliveries    int     `json:"active_deliveries"`
	CompletedToday      int     `json:"completed_today"`
	TotalRevenue        float64 `json:"total_revenue"`
	ActiveDrivers       int     `json:"active_drivers"`
	TotalCustomers      int     `json:"total_customers"`
	AverageDeliveryTime float64 `json:"average_delivery_time"`
}

// DeriveDashboardStats recomputes the dashboard record from the source
// snapshots. Revenue counts delivered orders only; delivery time is the
// mean of completed-created in minutes over delivered orders carrying both
// timestamps, 0 when none qualify.
func DeriveDashboardStats(src DashboardSources, now time.Time) DashboardStats {
	s := DashboardStats{
		TotalOrders:    len(src.Orders),
		TotalCustomers: len(src.Customers),
	}

	var deliveryMinutes float64
	var timedDeliveries int
	for _, o := range src.Orders {
		switch o.Status {
		case models.OrderPending:
			s.PendingOrders++
		case models.OrderInProgress:
			s.ActiveDeliveries++
		case models.OrderDelivered:
			s.TotalRevenue += o.Amount
			if o.CompletedAt != nil {
				if sameDay(*o.CompletedAt, now) {
					s.CompletedToday++
				}
				deliveryMinutes += o.CompletedAt.Sub(o.CreatedAt).Minutes()
				timedDeliveries++
			}
		}
	}
	if timedDeliveries > 0 {
		s.AverageDeliveryTime = round1(deliveryMinutes / float64(timedDeliveries))
	}

	for _, c := range src.Captains {
		if c.IsActive {
			s.ActiveDrivers++
		}
	}
	return s
}
