package stats

import "github.com/tawsil-app/ops-dashboard/internal/models"

// ProductStats is the record shown on the products page header.
type ProductStats struct {
	Total      int     `json:"total"`
	Active     int     `json:"active"`
	LowStock   int     `json:"low_stock"`
	TotalValue float64 `json:"total_value"`
}

// DeriveProductStats recomputes product statistics from a snapshot
// collection. LowStock counts products strictly below the threshold;
// TotalValue sums price*stock over the full collection regardless of status.
func DeriveProductStats(products []models.Product) ProductStats {
	s := ProductStats{Total: len(products)}
	for _, p := range products {
		if p.Status == models.ProductActive {
			s.Active++
		}
		if p.Stock < models.LowStockThreshold {
			s.LowStock++
		}
		s.TotalValue += p.Price * float64(p.Stock)
	}
	return s
}
