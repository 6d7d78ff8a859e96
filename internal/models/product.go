package models

// LowStockThreshold is the stock level below which a product is flagged.
const LowStockThreshold = 20

// ProductActive is the status value for sellable products.
const ProductActive = "active"

// Product represents a merchant's product.
type Product struct {
	ID         int     `json:"id"`
	MerchantID int     `json:"merchant_id"`
	Name       string  `json:"name"`
	Status     string  `json:"status"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
}

func (p Product) SearchFields() []string {
	return []string{p.Name, p.Status}
}
