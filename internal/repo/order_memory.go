package repo

import "github.com/tawsil-app/ops-dashboard/internal/models"

// InMemoryOrderRepository is an in-memory implementation of OrderRepository.
type InMemoryOrderRepository struct {
	orders []models.Order
	nextID int
}

// NewInMemoryOrderRepository creates a new instance of InMemoryOrderRepository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: []models.Order{},
		nextID: 1,
	}
}

func (r *InMemoryOrderRepository) Create(order models.Order) (models.Order, error) {
	order.ID = r.nextID
	r.nextID++
	r.orders = append(r.orders, order)
	return order, nil
}

func (r *InMemoryOrderRepository) GetAll() ([]models.Order, error) {
	return r.orders, nil
}

func (r *InMemoryOrderRepository) GetByID(id int) (models.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (r *InMemoryOrderRepository) Update(order models.Order) (models.Order, error) {
	for i, o := range r.orders {
		if o.ID == order.ID {
			r.orders[i] = order
			return order, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (r *InMemoryOrderRepository) Delete(id int) error {
	for i, o := range r.orders {
		if o.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return ErrOrderNotFound
}

func (r *InMemoryOrderRepository) Clear() {
	r.orders = []models.Order{}
}
