package repo

import "github.com/tawsil-app/ops-dashboard/internal/models"

// InMemoryMerchantRepository is an in-memory implementation of MerchantRepository.
type InMemoryMerchantRepository struct {
	merchants []models.Merchant
	nextID    int
}

// NewInMemoryMerchantRepository creates a new instance of InMemoryMerchantRepository.
func NewInMemoryMerchantRepository() *InMemoryMerchantRepository {
	return &InMemoryMerchantRepository{
		merchants: []models.Merchant{},
		nextID:    1,
	}
}

func (r *InMemoryMerchantRepository) Create(merchant models.Merchant) (models.Merchant, error) {
	merchant.ID = r.nextID
	r.nextID++
	r.merchants = append(r.merchants, merchant)
	return merchant, nil
}

func (r *InMemoryMerchantRepository) GetAll() ([]models.Merchant, error) {
	return r.merchants, nil
}

func (r *InMemoryMerchantRepository) GetActive() ([]models.Merchant, error) {
	var active []models.Merchant
	for _, m := range r.merchants {
		if m.IsActive {
			active = append(active, m)
		}
	}
	return active, nil
}

func (r *InMemoryMerchantRepository) GetByID(id int) (models.Merchant, error) {
	for _, m := range r.merchants {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Merchant{}, ErrMerchantNotFound
}

func (r *InMemoryMerchantRepository) Update(merchant models.Merchant) (models.Merchant, error) {
	for i, m := range r.merchants {
		if m.ID == merchant.ID {
			r.merchants[i] = merchant
			return merchant, nil
		}
	}
	return models.Merchant{}, ErrMerchantNotFound
}

func (r *InMemoryMerchantRepository) Delete(id int) error {
	for i, m := range r.merchants {
		if m.ID == id {
			r.merchants = append(r.merchants[:i], r.merchants[i+1:]...)
			return nil
		}
	}
	return ErrMerchantNotFound
}

func (r *InMemoryMerchantRepository) Clear() {
	r.merchants = []models.Merchant{}
}
