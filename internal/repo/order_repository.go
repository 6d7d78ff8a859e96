package repo

import "github.com/tawsil-app/ops-dashboard/internal/models"

// OrderRepository defines the interface for order data operations.
type OrderRepository interface {
	Create(order models.Order) (models.Order, error)
	GetAll() ([]models.Order, error)
	GetByID(id int) (models.Order, error)
	Update(order models.Order) (models.Order, error)
	Delete(id int) error
}
