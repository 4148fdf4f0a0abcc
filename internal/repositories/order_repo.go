package repositories

import "tienda/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Create persists the order and its items with no side effects on stock
	// or carts. Used for payment-failure audit records.
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	ListByUser(userID string) ([]models.Order, error)
	UpdateStatus(id string, status string) error
	// PlaceOrder runs the checkout unit of work: it creates the order (status
	// pending) and its items, decrements stock with a conditional update per
	// item (ErrInsufficientStock when a product ran out), calls confirm with
	// the pending order, then marks the order paid and clears the owner's
	// cart. Any error, including one from confirm, rolls the whole unit back.
	PlaceOrder(order *models.Order, confirm func(*models.Order) error) error
	// CountItemsByProduct reports how many order items reference the product.
	CountItemsByProduct(productID string) (int64, error)
}
