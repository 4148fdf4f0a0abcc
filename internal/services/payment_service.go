package services

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// PaymentResult is the verdict of a payment attempt.
type PaymentResult struct {
	Success       bool    `json:"success"`
	TransactionID string  `json:"transaction_id,omitempty"`
	FailureReason string  `json:"failure_reason,omitempty"`
	Amount        float64 `json:"amount"`
}

// PaymentProcessor is the opaque external collaborator charging the customer.
// The outcome is nondeterministic and the call may be slow; the order
// workflow must not assume a fast synchronous answer.
type PaymentProcessor interface {
	Process(amount float64, method, orderID string) (*PaymentResult, error)
}

// SimulatedPaymentService stands in for a real payment gateway. It sleeps to
// model network latency and approves a fixed fraction of attempts,
// independent of amount and method.
type SimulatedPaymentService struct {
	successRate float64
	minLatency  time.Duration
	maxLatency  time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedPaymentService creates a simulator approving successRate of
// attempts (0..1) with a latency drawn from [minLatency, maxLatency].
func NewSimulatedPaymentService(successRate float64, minLatency, maxLatency time.Duration) *SimulatedPaymentService {
	return &SimulatedPaymentService{
		successRate: successRate,
		minLatency:  minLatency,
		maxLatency:  maxLatency,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Process simulates charging the given amount.
func (s *SimulatedPaymentService) Process(amount float64, method, orderID string) (*PaymentResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive, got %.2f", amount)
	}

	s.mu.Lock()
	roll := s.rng.Float64()
	var latency time.Duration
	if s.maxLatency > s.minLatency {
		latency = s.minLatency + time.Duration(s.rng.Int63n(int64(s.maxLatency-s.minLatency)))
	} else {
		latency = s.minLatency
	}
	s.mu.Unlock()

	time.Sleep(latency)

	if roll >= s.successRate {
		log.Printf("Payment declined for order %s (amount %.2f, method %s)", orderID, amount, method)
		return &PaymentResult{
			Success:       false,
			FailureReason: "card declined by issuer",
			Amount:        amount,
		}, nil
	}

	return &PaymentResult{
		Success:       true,
		TransactionID: "txn-" + uuid.New().String(),
		Amount:        amount,
	}, nil
}
