package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tawsil-app/ops-dashboard/internal/models"
)

func ts(t time.Time) *time.Time { return &t }

func TestDeriveDashboardStats(t *testing.T) {
	completed := now.Add(-2 * time.Hour)
	src := DashboardSources{
		Orders: []models.Order{
			{ID: 1, Status: models.OrderPending, Amount: 40, CreatedAt: now.Add(-time.Hour)},
			{ID: 2, Status: models.OrderInProgress, Amount: 60, CreatedAt: now.Add(-time.Hour)},
			{ID: 3, Status: models.OrderDelivered, Amount: 100, CreatedAt: completed.Add(-30 * time.Minute), CompletedAt: ts(completed)},
			{ID: 4, Status: models.OrderCancelled, Amount: 50, CreatedAt: now.AddDate(0, 0, -1)},
		},
		Captains: []models.Captain{
			{ID: 1, IsActive: true},
			{ID: 2, IsActive: false},
		},
		Customers: []models.Customer{{ID: 1}, {ID: 2}, {ID: 3}},
	}

	s := DeriveDashboardStats(src, now)

	assert.Equal(t, 4, s.TotalOrders)
	assert.Equal(t, 1, s.PendingOrders)
	assert.Equal(t, 1, s.ActiveDeliveries)
	assert.Equal(t, 1, s.CompletedToday)
	assert.Equal(t, 100.0, s.TotalRevenue)
	assert.Equal(t, 1, s.ActiveDrivers)
	assert.Equal(t, 3, s.TotalCustomers)
	assert.Equal(t, 30.0, s.AverageDeliveryTime)
}

func TestDeriveDashboardStats_RevenueIgnoresCancelledAndPending(t *testing.T) {
	src := DashboardSources{
		Orders: []models.Order{
			{ID: 1, Status: models.OrderDelivered, Amount: 100, CreatedAt: now},
			{ID: 2, Status: models.OrderCancelled, Amount: 50, CreatedAt: now},
		},
	}

	s := DeriveDashboardStats(src, now)

	assert.Equal(t, 100.0, s.TotalRevenue)
}

func TestDeriveDashboardStats_NoTimedDeliveries(t *testing.T) {
	src := DashboardSources{
		Orders: []models.Order{
			// Delivered but missing completion timestamp: excluded from the average.
			{ID: 1, Status: models.OrderDelivered, Amount: 10, CreatedAt: now.Add(-time.Hour)},
			{ID: 2, Status: models.OrderPending, Amount: 10, CreatedAt: now},
		},
	}

	s := DeriveDashboardStats(src, now)

	assert.Zero(t, s.AverageDeliveryTime)
}

func TestDeriveDashboardStats_CompletedTodayIsCalendarScoped(t *testing.T) {
	yesterday := now.AddDate(0, 0, -1)
	src := DashboardSources{
		Orders: []models.Order{
			{ID: 1, Status: models.OrderDelivered, Amount: 10, CreatedAt: yesterday.Add(-time.Hour), CompletedAt: ts(yesterday)},
			{ID: 2, Status: models.OrderDelivered, Amount: 10, CreatedAt: now.Add(-time.Hour), CompletedAt: ts(now)},
		},
	}

	s := DeriveDashboardStats(src, now)

	assert.Equal(t, 1, s.CompletedToday)
}

func TestDeriveDashboardStats_Empty(t *testing.T) {
	assert.Equal(t, DashboardStats{}, DeriveDashboardStats(DashboardSources{}, now))
}
