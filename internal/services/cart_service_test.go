package services_test

import (
	"testing"

	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCartFixture(t *testing.T) (*services.CartService, *repositories.MockCartRepository, *repositories.MockProductRepository) {
	t.Helper()
	productRepo := repositories.NewMockProductRepository()
	cartRepo := repositories.NewMockCartRepository()
	return services.NewCartService(cartRepo, productRepo), cartRepo, productRepo
}

func TestCartService_AddItemMergesQuantities(t *testing.T) {
	service, _, productRepo := newCartFixture(t)

	product := &models.Product{ID: "prod-1", Name: "Yarn", Price: 4.50, Stock: 100, IsActive: true}
	assert.NoError(t, productRepo.Create(product))

	first, err := service.AddItem("user-1", "prod-1", 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)

	second, err := service.AddItem("user-1", "prod-1", 3)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	// Exactly one row for the (user, product) pair
	items, err := service.ListItems("user-1")
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCartService_AddItemRejectsBadInput(t *testing.T) {
	service, _, productRepo := newCartFixture(t)

	inactive := &models.Product{ID: "prod-2", Name: "Retired Kit", Price: 10, Stock: 5, IsActive: false}
	assert.NoError(t, productRepo.Create(inactive))

	// Unknown product
	_, err := service.AddItem("user-1", "missing", 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// Inactive product is indistinguishable from a missing one
	_, err = service.AddItem("user-1", "prod-2", 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// Non-positive quantity
	_, err = service.AddItem("user-1", "prod-2", 0)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)
	_, err = service.AddItem("user-1", "prod-2", -3)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)
}

func TestCartService_UpdateItem(t *testing.T) {
	service, _, productRepo := newCartFixture(t)

	product := &models.Product{ID: "prod-1", Name: "Yarn", Price: 4.50, Stock: 100, IsActive: true}
	assert.NoError(t, productRepo.Create(product))

	item, err := service.AddItem("user-1", "prod-1", 2)
	assert.NoError(t, err)

	updated, err := service.UpdateItem("user-1", item.ID, 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)

	// Quantity zero is rejected, not treated as removal
	_, err = service.UpdateItem("user-1", item.ID, 0)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)

	// Another user's item is hidden behind not-found
	_, err = service.UpdateItem("user-2", item.ID, 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = service.UpdateItem("user-1", "missing", 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCartService_RemoveItem(t *testing.T) {
	service, _, productRepo := newCartFixture(t)

	product := &models.Product{ID: "prod-1", Name: "Yarn", Price: 4.50, Stock: 100, IsActive: true}
	assert.NoError(t, productRepo.Create(product))

	item, err := service.AddItem("user-1", "prod-1", 2)
	assert.NoError(t, err)

	// Ownership is enforced before deletion
	err = service.RemoveItem("user-2", item.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.NoError(t, service.RemoveItem("user-1", item.ID))

	items, err := service.ListItems("user-1")
	assert.NoError(t, err)
	assert.Empty(t, items)

	err = service.RemoveItem("user-1", item.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
