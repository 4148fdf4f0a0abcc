package services_test

import (
	"strings"
	"testing"

	"tienda/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestSimulatedPaymentService_AlwaysApproves(t *testing.T) {
	payments := services.NewSimulatedPaymentService(1.0, 0, 0)

	for i := 0; i < 20; i++ {
		result, err := payments.Process(42.50, "credit_card", "order-1")
		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.True(t, strings.HasPrefix(result.TransactionID, "txn-"))
		assert.Empty(t, result.FailureReason)
		assert.InDelta(t, 42.50, result.Amount, 0.001)
	}
}

func TestSimulatedPaymentService_AlwaysDeclines(t *testing.T) {
	payments := services.NewSimulatedPaymentService(0.0, 0, 0)

	for i := 0; i < 20; i++ {
		result, err := payments.Process(42.50, "credit_card", "order-1")
		assert.NoError(t, err)
		assert.False(t, result.Success)
		assert.Empty(t, result.TransactionID)
		assert.Equal(t, "card declined by issuer", result.FailureReason)
	}
}

func TestSimulatedPaymentService_RejectsNonPositiveAmount(t *testing.T) {
	payments := services.NewSimulatedPaymentService(1.0, 0, 0)

	_, err := payments.Process(0, "credit_card", "order-1")
	assert.Error(t, err)

	_, err = payments.Process(-5, "credit_card", "order-1")
	assert.Error(t, err)
}
