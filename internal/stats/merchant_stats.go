package stats

import "github.com/tawsil-app/ops-dashboard/internal/models"

// UnspecifiedCategory is the histogram bucket for merchants without a category.
const UnspecifiedCategory = "unspecified"

// MerchantStats is the record shown on the merchants page header.
type MerchantStats struct {
	Total         int            `json:"total"`
	Active        int            `json:"active"`
	Inactive      int            `json:"inactive"`
	AvgCommission float64        `json:"avg_commission"`
	ByCategory    map[string]int `json:"by_category"`
}

// DeriveMerchantStats recomputes merchant statistics from a snapshot
// collection. AvgCommission is 0 on an empty collection, never NaN.
// Every merchant lands in exactly one category bucket.
func DeriveMerchantStats(merchants []models.Merchant) MerchantStats {
	s := MerchantStats{
		Total:      len(merchants),
		ByCategory: make(map[string]int),
	}

	var commissionSum float64
	for _, m := range merchants {
		if m.IsActive {
			s.Active++
		}
		commissionSum += m.CommissionRate

		category := m.Category
		if category == "" {
			category = UnspecifiedCategory
		}
		s.ByCategory[category]++
	}
	s.Inactive = s.Total - s.Active

	if s.Total > 0 {
		s.AvgCommission = round1(commissionSum / float64(s.Total))
	}
	return s
}
