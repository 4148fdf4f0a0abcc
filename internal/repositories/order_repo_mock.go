package repositories

import (
	"fmt"
	"sort"
	"sync"

	"tienda/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// PlaceOrder mutates the mock product and cart repositories it was built
// with, mirroring the cross-table transaction of the GORM implementation.
type MockOrderRepository struct {
	orders   map[string]models.Order
	products *MockProductRepository
	carts    *MockCartRepository
	mu       sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository(products *MockProductRepository, carts *MockCartRepository) *MockOrderRepository {
	return &MockOrderRepository{
		orders:   make(map[string]models.Order),
		products: products,
		carts:    carts,
	}
}

// Create stores the order with no side effects.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	r.orders[order.ID] = *order
	return nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	return &order, nil
}

// ListByUser returns all orders of a user, newest first.
func (r *MockOrderRepository) ListByUser(userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0)
	for _, order := range r.orders {
		if order.UserID == userID {
			orderList = append(orderList, order)
		}
	}
	sort.Slice(orderList, func(i, j int) bool {
		return orderList[i].CreatedAt.After(orderList[j].CreatedAt)
	})
	return orderList, nil
}

// UpdateStatus updates the status of an order.
func (r *MockOrderRepository) UpdateStatus(id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	order.Status = status
	r.orders[id] = order
	return nil
}

// PlaceOrder mimics the transactional checkout: stock decrements are undone
// when confirm fails, and nothing is stored unless the whole unit succeeds.
func (r *MockOrderRepository) PlaceOrder(order *models.Order, confirm func(*models.Order) error) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	order.Status = models.OrderStatusPending

	decremented := make([]models.OrderItem, 0, len(order.Items))
	rollback := func() {
		for _, item := range decremented {
			r.products.restock(item.ProductID, item.Quantity)
		}
	}

	for _, item := range order.Items {
		if err := r.products.DecrementStock(item.ProductID, item.Quantity); err != nil {
			rollback()
			return err
		}
		decremented = append(decremented, item)
	}

	if err := confirm(order); err != nil {
		rollback()
		return err
	}

	order.Status = models.OrderStatusPaid

	r.mu.Lock()
	r.orders[order.ID] = *order
	r.mu.Unlock()

	return r.carts.DeleteByUser(order.UserID)
}

// CountItemsByProduct counts order items referencing a product.
func (r *MockOrderRepository) CountItemsByProduct(productID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, order := range r.orders {
		for _, item := range order.Items {
			if item.ProductID == productID {
				count++
			}
		}
	}
	return count, nil
}
