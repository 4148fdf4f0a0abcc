package repositories

import (
	"tienda/internal/models"
)

// ProductFilter narrows catalog listings. Zero values mean "no filter".
type ProductFilter struct {
	CategoryID string
	Search     string // substring match on the product name
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetAll returns active products matching the filter.
	GetAll(filter ProductFilter) ([]models.Product, error)
	// GetByID returns the product regardless of its active flag; callers
	// decide whether inactive products are visible.
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	// Deactivate hides the product from the catalog without deleting it.
	Deactivate(id string) error
	CountByCategory(categoryID string) (int64, error)
}

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Create(category *models.Category) error
	// Delete fails with ErrCategoryInUse when products still reference the
	// category.
	Delete(id string) error
}
