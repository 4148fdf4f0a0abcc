package services

import (
	"errors"
	"fmt"

	"tienda/internal/models"
	"tienda/internal/repositories"
)

// CartService handles business logic for the per-user shopping cart.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItem puts quantity units of a product in the user's cart. If the product
// is already there the quantities merge into the existing row.
func (s *CartService) AddItem(userID, productID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity %d: %w", quantity, ErrInvalidQuantity)
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		// Inactive products cannot be newly added to a cart.
		return nil, fmt.Errorf("product with ID %s: %w", productID, repositories.ErrNotFound)
	}

	existing, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err == nil {
		existing.Quantity += quantity
		if err := s.cartRepo.Update(existing); err != nil {
			return nil, err
		}
		existing.Product = product
		return existing, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}
	item.Product = product
	return item, nil
}

// UpdateItem overwrites the quantity of a cart item owned by the user.
func (s *CartService) UpdateItem(userID, itemID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity %d: %w", quantity, ErrInvalidQuantity)
	}

	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	item.Quantity = quantity
	if err := s.cartRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem deletes a cart item owned by the user.
func (s *CartService) RemoveItem(userID, itemID string) error {
	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return err
	}
	return s.cartRepo.Delete(item.ID)
}

// ListItems returns the user's cart with product snapshots for display.
func (s *CartService) ListItems(userID string) ([]models.CartItem, error) {
	return s.cartRepo.ListByUser(userID)
}

// ownedItem loads a cart item and hides other users' items behind ErrNotFound.
func (s *CartService) ownedItem(userID, itemID string) (*models.CartItem, error) {
	item, err := s.cartRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item.UserID != userID {
		return nil, fmt.Errorf("cart item with ID %s: %w", itemID, repositories.ErrNotFound)
	}
	return item, nil
}
