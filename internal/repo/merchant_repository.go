package repo

import "github.com/tawsil-app/ops-dashboard/internal/models"

// MerchantRepository defines the interface for merchant data operations.
type MerchantRepository interface {
	Create(merchant models.Merchant) (models.Merchant, error)
	GetAll() ([]models.Merchant, error)
	GetActive() ([]models.Merchant, error)
	GetByID(id int) (models.Merchant, error)
	Update(merchant models.Merchant) (models.Merchant, error)
	Delete(id int) error
}
