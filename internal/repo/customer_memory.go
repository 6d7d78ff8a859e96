package repo

import "github.com/tawsil-app/ops-dashboard/internal/models"

// InMemoryCustomerRepository is an in-memory implementation of CustomerRepository.
type InMemoryCustomerRepository struct {
	customers []models.Customer
	nextID    int
}

// NewInMemoryCustomerRepository creates a new instance of InMemoryCustomerRepository.
func NewInMemoryCustomerRepository() *InMemoryCustomerRepository {
	return &InMemoryCustomerRepository{
		customers: []models.Customer{},
		nextID:    1,
	}
}

func (r *InMemoryCustomerRepository) Create(customer models.Customer) (models.Customer, error) {
	customer.ID = r.nextID
	r.nextID++
	r.customers = append(r.customers, customer)
	return customer, nil
}

func (r *InMemoryCustomerRepository) GetAll() ([]models.Customer, error) {
	return r.customers, nil
}

func (r *InMemoryCustomerRepository) GetByID(id int) (models.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Customer{}, ErrCustomerNotFound
}

func (r *InMemoryCustomerRepository) Update(customer models.Customer) (models.Customer, error) {
	for i, c := range r.customers {
		if c.ID == customer.ID {
			r.customers[i] = customer
			return customer, nil
		}
	}
	return models.Customer{}, ErrCustomerNotFound
}

func (r *InMemoryCustomerRepository) Delete(id int) error {
	for i, c := range r.customers {
		if c.ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			return nil
		}
	}
	return ErrCustomerNotFound
}

func (r *InMemoryCustomerRepository) Clear() {
	r.customers = []models.Customer{}
}
