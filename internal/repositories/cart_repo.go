package repositories

import "tienda/internal/models"

// CartRepository defines the interface for cart item data access.
type CartRepository interface {
	// ListByUser returns the user's cart items with their product preloaded.
	ListByUser(userID string) ([]models.CartItem, error)
	GetByID(id string) (*models.CartItem, error)
	// GetByUserAndProduct returns the single item for the pair, or ErrNotFound.
	GetByUserAndProduct(userID, productID string) (*models.CartItem, error)
	Create(item *models.CartItem) error
	Update(item *models.CartItem) error
	Delete(id string) error
	DeleteByUser(userID string) error
}
