package services

import (
	"fmt"

	"tienda/internal/models"
	"tienda/internal/repositories"
)

// ProductService handles business logic for the catalog: products and
// categories.
type ProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	orderRepo    repositories.OrderRepository
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, orderRepo repositories.OrderRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
	}
}

// ListProducts retrieves active products, optionally filtered by category and
// a substring match on the name.
func (s *ProductService) ListProducts(filter repositories.ProductFilter) ([]models.Product, error) {
	return s.productRepo.GetAll(filter)
}

// GetProduct retrieves a single product for the public catalog. Inactive
// products are reported as not found.
func (s *ProductService) GetProduct(id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, fmt.Errorf("product with ID %s: %w", id, repositories.ErrNotFound)
	}
	return product, nil
}

// CreateProduct creates a new product after checking its category exists.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if _, err := s.categoryRepo.GetByID(product.CategoryID); err != nil {
		return err
	}
	product.IsActive = true
	return s.productRepo.Create(product)
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	current, err := s.productRepo.GetByID(product.ID)
	if err != nil {
		return err
	}
	if product.CategoryID != current.CategoryID {
		if _, err := s.categoryRepo.GetByID(product.CategoryID); err != nil {
			return err
		}
	}
	return s.productRepo.Update(product)
}

// DeleteProduct removes a product, or deactivates it when order items still
// reference it so order history stays intact.
func (s *ProductService) DeleteProduct(id string) (deactivated bool, err error) {
	count, err := s.orderRepo.CountItemsByProduct(id)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, s.productRepo.Deactivate(id)
	}
	return false, s.productRepo.Delete(id)
}

// ListCategories retrieves all categories.
func (s *ProductService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

// CreateCategory creates a new category.
func (s *ProductService) CreateCategory(category *models.Category) error {
	return s.categoryRepo.Create(category)
}

// DeleteCategory removes a category. Deletion is rejected while products are
// still attached; callers must move or delete the products first.
func (s *ProductService) DeleteCategory(id string) error {
	return s.categoryRepo.Delete(id)
}
