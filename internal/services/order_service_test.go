package services_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/services"

	"github.com/stretchr/testify/assert"
)

type checkoutFixture struct {
	orders   *services.OrderService
	carts    *services.CartService
	cartRepo *repositories.MockCartRepository
	prodRepo *repositories.MockProductRepository
	ordRepo  *repositories.MockOrderRepository
}

func newCheckoutFixture(t *testing.T, successRate float64) *checkoutFixture {
	t.Helper()
	prodRepo := repositories.NewMockProductRepository()
	cartRepo := repositories.NewMockCartRepository()
	ordRepo := repositories.NewMockOrderRepository(prodRepo, cartRepo)
	payments := services.NewSimulatedPaymentService(successRate, 0, 0)
	return &checkoutFixture{
		orders:   services.NewOrderService(ordRepo, cartRepo, prodRepo, payments, nil),
		carts:    services.NewCartService(cartRepo, prodRepo),
		cartRepo: cartRepo,
		prodRepo: prodRepo,
		ordRepo:  ordRepo,
	}
}

func TestOrderService_CheckoutSuccess(t *testing.T) {
	f := newCheckoutFixture(t, 1.0)

	product := &models.Product{ID: "prod-1", Name: "Mug", Price: 9.99, Stock: 10, IsActive: true}
	assert.NoError(t, f.prodRepo.Create(product))
	_, err := f.carts.AddItem("user-1", "prod-1", 3)
	assert.NoError(t, err)

	order, payment, err := f.orders.Checkout("user-1", "1 Main St", "credit_card")
	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.NotNil(t, payment)

	assert.Equal(t, models.OrderStatusPaid, order.Status)
	assert.InDelta(t, 29.97, order.TotalAmount, 0.001)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.InDelta(t, 9.99, order.Items[0].Price, 0.001)
	assert.True(t, payment.Success)
	assert.Contains(t, payment.TransactionID, "txn-")

	// Stock was decremented and the cart cleared
	stocked, err := f.prodRepo.GetByID("prod-1")
	assert.NoError(t, err)
	assert.Equal(t, 7, stocked.Stock)

	items, err := f.carts.ListItems("user-1")
	assert.NoError(t, err)
	assert.Empty(t, items)

	// The order item keeps the price it was bought at
	product.Price = 19.99
	assert.NoError(t, f.prodRepo.Update(product))
	stored, err := f.orders.GetOrder("user-1", order.ID)
	assert.NoError(t, err)
	assert.InDelta(t, 29.97, stored.TotalAmount, 0.001)
	assert.InDelta(t, 9.99, stored.Items[0].Price, 0.001)
}

func TestOrderService_CheckoutEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t, 1.0)

	_, _, err := f.orders.Checkout("user-1", "1 Main St", "credit_card")
	assert.ErrorIs(t, err, services.ErrCartEmpty)

	orders, err := f.orders.ListOrders("user-1")
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_CheckoutInvalidInput(t *testing.T) {
	f := newCheckoutFixture(t, 1.0)

	_, _, err := f.orders.Checkout("user-1", "  ", "credit_card")
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, _, err = f.orders.Checkout("user-1", "1 Main St", "")
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestOrderService_CheckoutPaymentDeclined(t *testing.T) {
	f := newCheckoutFixture(t, 0.0)

	product := &models.Product{ID: "prod-1", Name: "Mug", Price: 9.99, Stock: 10, IsActive: true}
	assert.NoError(t, f.prodRepo.Create(product))
	_, err := f.carts.AddItem("user-1", "prod-1", 2)
	assert.NoError(t, err)

	order, payment, err := f.orders.Checkout("user-1", "1 Main St", "credit_card")
	assert.ErrorIs(t, err, services.ErrPaymentDeclined)
	assert.NotNil(t, payment)
	assert.False(t, payment.Success)
	assert.Equal(t, "card declined by issuer", payment.FailureReason)

	// Stock and cart are untouched
	stocked, err := f.prodRepo.GetByID("prod-1")
	assert.NoError(t, err)
	assert.Equal(t, 10, stocked.Stock)

	items, err := f.carts.ListItems("user-1")
	assert.NoError(t, err)
	assert.Len(t, items, 1)

	// Only the audit record with status payment_failed remains
	assert.NotNil(t, order)
	assert.Equal(t, models.OrderStatusPaymentFailed, order.Status)

	orders, err := f.orders.ListOrders("user-1")
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, models.OrderStatusPaymentFailed, orders[0].Status)
}

func TestOrderService_CheckoutInsufficientStock(t *testing.T) {
	f := newCheckoutFixture(t, 1.0)

	product := &models.Product{ID: "prod-1", Name: "Mug", Price: 9.99, Stock: 5, IsActive: true}
	assert.NoError(t, f.prodRepo.Create(product))
	_, err := f.carts.AddItem("user-1", "prod-1", 3)
	assert.NoError(t, err)

	// Stock dropped after the item was carted
	product.Stock = 2
	assert.NoError(t, f.prodRepo.Update(product))

	_, _, err = f.orders.Checkout("user-1", "1 Main St", "credit_card")
	assert.ErrorIs(t, err, repositories.ErrInsufficientStock)

	stocked, err := f.prodRepo.GetByID("prod-1")
	assert.NoError(t, err)
	assert.Equal(t, 2, stocked.Stock)
}

func TestOrderService_CheckoutProductUnavailable(t *testing.T) {
	f := newCheckoutFixture(t, 1.0)

	product := &models.Product{ID: "prod-1", Name: "Mug", Price: 9.99, Stock: 10, IsActive: true}
	assert.NoError(t, f.prodRepo.Create(product))
	_, err := f.carts.AddItem("user-1", "prod-1", 1)
	assert.NoError(t, err)

	// Product retired between carting and checkout
	product.IsActive = false
	assert.NoError(t, f.prodRepo.Update(product))

	_, _, err = f.orders.Checkout("user-1", "1 Main St", "credit_card")
	assert.ErrorIs(t, err, services.ErrProductUnavailable)
}

func TestOrderService_GetOrderOwnership(t *testing.T) {
	f := newCheckoutFixture(t, 1.0)

	product := &models.Product{ID: "prod-1", Name: "Mug", Price: 9.99, Stock: 10, IsActive: true}
	assert.NoError(t, f.prodRepo.Create(product))
	_, err := f.carts.AddItem("user-1", "prod-1", 1)
	assert.NoError(t, err)

	order, _, err := f.orders.Checkout("user-1", "1 Main St", "credit_card")
	assert.NoError(t, err)

	_, err = f.orders.GetOrder("user-2", order.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = f.orders.GetOrder("user-1", "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestOrderService_ConcurrentCheckoutsNeverOversell(t *testing.T) {
	f := newCheckoutFixture(t, 1.0)

	const buyers = 10
	product := &models.Product{ID: "prod-1", Name: "Mug", Price: 9.99, Stock: buyers - 1, IsActive: true}
	assert.NoError(t, f.prodRepo.Create(product))

	userIDs := make([]string, buyers)
	for i := range userIDs {
		userIDs[i] = fmt.Sprintf("user-%d", i)
		_, err := f.carts.AddItem(userIDs[i], "prod-1", 1)
		assert.NoError(t, err)
	}

	var wg sync.WaitGroup
	errs := make([]error, buyers)
	for i, userID := range userIDs {
		wg.Add(1)
		go func(i int, userID string) {
			defer wg.Done()
			_, _, errs[i] = f.orders.Checkout(userID, "1 Main St", "credit_card")
		}(i, userID)
	}
	wg.Wait()

	succeeded, outOfStock := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, repositories.ErrInsufficientStock):
			outOfStock++
		default:
			t.Fatalf("unexpected checkout error: %v", err)
		}
	}
	assert.Equal(t, buyers-1, succeeded)
	assert.Equal(t, 1, outOfStock)

	stocked, err := f.prodRepo.GetByID("prod-1")
	assert.NoError(t, err)
	assert.Equal(t, 0, stocked.Stock)
}
