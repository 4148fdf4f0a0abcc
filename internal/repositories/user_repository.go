package repositories

import "tienda/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	Update(user *models.User) error
	// Delete removes the user and their cart items. Orders keep the user id.
	Delete(id string) error
	GetAll() ([]models.User, error)
}
