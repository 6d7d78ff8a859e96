package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tawsil-app/ops-dashboard/internal/models"
)

var now = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestDeriveCustomerStats(t *testing.T) {
	customers := []models.Customer{
		{ID: 1, Name: "Ahmed", IsActive: true, CreatedAt: now.AddDate(0, 0, -3)},
		{ID: 2, Name: "Sara", IsActive: true, CreatedAt: now.AddDate(0, -2, 0)},
		{ID: 3, Name: "Omar", IsActive: false, CreatedAt: now.AddDate(-1, 0, 0)},
	}

	s := DeriveCustomerStats(customers, now)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Active)
	assert.Equal(t, 1, s.Inactive)
	assert.Equal(t, s.Total, s.Active+s.Inactive)
	assert.Equal(t, 1, s.ThisMonth)
}

func TestDeriveCustomerStats_ThisMonthIsCalendarScoped(t *testing.T) {
	// Created 20 days ago but in the previous calendar month: must not count.
	endOfMonth := time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)
	customers := []models.Customer{
		{ID: 1, CreatedAt: endOfMonth.AddDate(0, 0, -20)},
		{ID: 2, CreatedAt: endOfMonth.AddDate(0, 0, -2)},
	}

	s := DeriveCustomerStats(customers, endOfMonth)

	assert.Equal(t, 1, s.ThisMonth)
}

func TestDeriveCustomerStats_Empty(t *testing.T) {
	s := DeriveCustomerStats(nil, now)
	assert.Equal(t, CustomerStats{}, s)
}

func TestDeriveCaptainStats(t *testing.T) {
	captains := []models.Captain{
		{ID: 1, IsActive: true, IsAvailable: true},
		{ID: 2, IsActive: true, IsAvailable: false},
		{ID: 3, IsActive: true, IsAvailable: false},
		{ID: 4, IsActive: false, IsAvailable: true}, // inactive: neither bucket
	}

	s := DeriveCaptainStats(captains)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 3, s.Active)
	assert.Equal(t, 1, s.Available)
	assert.Equal(t, 2, s.Busy)
	assert.Equal(t, s.Active, s.Available+s.Busy)
}

func TestDeriveCaptainStats_Empty(t *testing.T) {
	assert.Equal(t, CaptainStats{}, DeriveCaptainStats(nil))
}

func TestDeriveMerchantStats(t *testing.T) {
	merchants := []models.Merchant{
		{ID: 1, IsActive: true, CommissionRate: 10, Category: "A"},
		{ID: 2, IsActive: false, CommissionRate: 15},
		{ID: 3, IsActive: true, CommissionRate: 20, Category: "A"},
	}

	s := DeriveMerchantStats(merchants)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Active)
	assert.Equal(t, 1, s.Inactive)
	assert.Equal(t, s.Total, s.Active+s.Inactive)
	assert.Equal(t, 15.0, s.AvgCommission)
	assert.Equal(t, map[string]int{"A": 2, "unspecified": 1}, s.ByCategory)
}

func TestDeriveMerchantStats_AvgCommissionRounding(t *testing.T) {
	merchants := []models.Merchant{
		{ID: 1, CommissionRate: 10},
		{ID: 2, CommissionRate: 10},
		{ID: 3, CommissionRate: 11},
	}

	s := DeriveMerchantStats(merchants)

	assert.Equal(t, 10.3, s.AvgCommission)
}

func TestDeriveMerchantStats_EmptyHasZeroCommission(t *testing.T) {
	s := DeriveMerchantStats(nil)

	assert.Zero(t, s.AvgCommission)
	assert.False(t, s.AvgCommission != s.AvgCommission, "avg commission must not be NaN")
	assert.Empty(t, s.ByCategory)
}

func TestDeriveProductStats(t *testing.T) {
	products := []models.Product{
		{ID: 1, Status: models.ProductActive, Price: 10, Stock: 5},
		{ID: 2, Status: "archived", Price: 3, Stock: 0},
	}

	s := DeriveProductStats(products)

	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.Active)
	assert.Equal(t, 50.0, s.TotalValue)
}

func TestDeriveProductStats_LowStockThresholdIsExclusive(t *testing.T) {
	products := []models.Product{
		{ID: 1, Stock: 19},
		{ID: 2, Stock: 20},
		{ID: 3, Stock: 21},
	}

	s := DeriveProductStats(products)

	assert.Equal(t, 1, s.LowStock)
}

func TestDeriveProductStats_Empty(t *testing.T) {
	assert.Equal(t, ProductStats{}, DeriveProductStats(nil))
}
