package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/pkg/rabbitmq"
)

// OrderService orchestrates the checkout workflow: it validates the cart,
// snapshots prices, places the order transactionally and settles payment.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	payments    PaymentProcessor
	mqClient    *rabbitmq.Client // RabbitMQ client, may be nil
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, payments PaymentProcessor, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		payments:    payments,
		mqClient:    mqClient,
	}
}

// Checkout converts the user's cart into an order.
//
// The workflow: validate input, load the cart, run a read-only validation
// pass over every item, then hand one unit of work to the order repository:
// order + items created, stock conditionally decremented, payment settled,
// cart cleared. A declined payment rolls the whole unit back — stock is never
// consumed by an unpaid order — and only an audit order with status
// payment_failed is kept.
func (s *OrderService) Checkout(userID, shippingAddress, paymentMethod string) (*models.Order, *PaymentResult, error) {
	if strings.TrimSpace(shippingAddress) == "" {
		return nil, nil, fmt.Errorf("shipping address is required: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(paymentMethod) == "" {
		return nil, nil, fmt.Errorf("payment method is required: %w", ErrInvalidInput)
	}

	cartItems, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cartItems) == 0 {
		return nil, nil, ErrCartEmpty
	}

	// Validation pass, in cart order, before any mutation. The transaction
	// below re-checks stock with a conditional decrement, so a race between
	// this pass and the commit cannot drive stock negative.
	orderItems := make([]models.OrderItem, 0, len(cartItems))
	var total float64
	for _, item := range cartItems {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, nil, fmt.Errorf("product %s: %w", item.ProductID, ErrProductUnavailable)
			}
			return nil, nil, err
		}
		if !product.IsActive {
			return nil, nil, fmt.Errorf("product '%s': %w", product.Name, ErrProductUnavailable)
		}
		if product.Stock < item.Quantity {
			return nil, nil, fmt.Errorf("product '%s' (requested %d, available %d): %w",
				product.Name, item.Quantity, product.Stock, repositories.ErrInsufficientStock)
		}

		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Price:     product.Price, // Price at the time of order
		})
		total += product.Price * float64(item.Quantity)
	}

	order := &models.Order{
		UserID:          userID,
		Items:           orderItems,
		TotalAmount:     total,
		Status:          models.OrderStatusPending,
		PaymentMethod:   paymentMethod,
		ShippingAddress: shippingAddress,
	}

	var payment *PaymentResult
	err = s.orderRepo.PlaceOrder(order, func(pending *models.Order) error {
		result, perr := s.payments.Process(pending.TotalAmount, paymentMethod, pending.ID)
		if perr != nil {
			return fmt.Errorf("payment processing failed: %w", perr)
		}
		payment = result
		if !result.Success {
			return fmt.Errorf("%s: %w", result.FailureReason, ErrPaymentDeclined)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrPaymentDeclined) {
			// The unit of work was rolled back: stock and cart are untouched.
			// Keep an audit record of the declined attempt.
			order.Status = models.OrderStatusPaymentFailed
			if createErr := s.orderRepo.Create(order); createErr != nil {
				log.Printf("Failed to record declined order for user %s: %v", userID, createErr)
			}
			return order, payment, err
		}
		return nil, payment, err
	}

	s.publishOrderPaid(order)
	return order, payment, nil
}

// GetOrder retrieves one of the user's orders. Orders of other users are
// hidden behind not-found.
func (s *OrderService) GetOrder(userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("order with ID %s: %w", orderID, repositories.ErrNotFound)
	}
	return order, nil
}

// ListOrders retrieves all orders of the user, newest first.
func (s *OrderService) ListOrders(userID string) ([]models.Order, error) {
	return s.orderRepo.ListByUser(userID)
}

// publishOrderPaid emits an order.paid event. Publishing is best-effort: a
// broker outage must not fail a checkout that already committed.
func (s *OrderService) publishOrderPaid(order *models.Order) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}

	event := map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
		"total":   order.TotalAmount,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event to JSON: %v", err)
		return
	}
	if err := s.mqClient.Publish("order.paid", body); err != nil {
		log.Printf("Warning: Failed to publish order paid event for order %s: %v", order.ID, err)
		return
	}
	log.Printf("Successfully published order paid event for order %s", order.ID)
}
