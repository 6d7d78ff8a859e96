package repo

import "github.com/tawsil-app/ops-dashboard/internal/models"

// CaptainRepository defines the interface for delivery captain data operations.
type CaptainRepository interface {
	Create(captain models.Captain) (models.Captain, error)
	GetAll() ([]models.Captain, error)
	GetByID(id int) (models.Captain, error)
	Update(captain models.Captain) (models.Captain, error)
	Delete(id int) error
}
