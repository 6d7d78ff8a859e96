package repo

import "github.com/tawsil-app/ops-dashboard/internal/models"

// UserRepository defines the interface for operator account lookups.
type UserRepository interface {
	GetByUsername(username string) (models.User, error)
	CreateUser(u models.User) (models.User, error)
}
