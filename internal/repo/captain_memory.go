package repo

import "github.com/tawsil-app/ops-dashboard/internal/models"

// InMemoryCaptainRepository is an in-memory implementation of CaptainRepository.
type InMemoryCaptainRepository struct {
	captains []models.Captain
	nextID   int
}

// NewInMemoryCaptainRepository creates a new instance of InMemoryCaptainRepository.
func NewInMemoryCaptainRepository() *InMemoryCaptainRepository {
	return &InMemoryCaptainRepository{
		captains: []models.Captain{},
		nextID:   1,
	}
}

func (r *InMemoryCaptainRepository) Create(captain models.Captain) (models.Captain, error) {
	captain.ID = r.nextID
	r.nextID++
	r.captains = append(r.captains, captain)
	return captain, nil
}

func (r *InMemoryCaptainRepository) GetAll() ([]models.Captain, error) {
	return r.captains, nil
}

func (r *InMemoryCaptainRepository) GetByID(id int) (models.Captain, error) {
	for _, c := range r.captains {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Captain{}, ErrCaptainNotFound
}

func (r *InMemoryCaptainRepository) Update(captain models.Captain) (models.Captain, error) {
	for i, c := range r.captains {
		if c.ID == captain.ID {
			r.captains[i] = captain
			return captain, nil
		}
	}
	return models.Captain{}, ErrCaptainNotFound
}

func (r *InMemoryCaptainRepository) Delete(id int) error {
	for i, c := range r.captains {
		if c.ID == id {
			r.captains = append(r.captains[:i], r.captains[i+1:]...)
			return nil
		}
	}
	return ErrCaptainNotFound
}

func (r *InMemoryCaptainRepository) Clear() {
	r.captains = []models.Captain{}
}
