package repositories

import (
	"sync"

	"konaseema/internal/models"

	"github.com/google/uuid"
)

// MockCheckoutRepository is an in-memory implementation of
// CheckoutRepository that records every write it receives.
type MockCheckoutRepository struct {
	Addresses []models.Address
	Orders    []models.Order
	Items     []models.OrderItem

	// FailAddress / FailOrder / FailItems force the corresponding insert to
	// return the given error, for exercising partial-failure paths.
	FailAddress error
	FailOrder   error
	FailItems   error

	mu sync.Mutex
}

// NewMockCheckoutRepository creates a new instance of MockCheckoutRepository.
func NewMockCheckoutRepository() *MockCheckoutRepository {
	return &MockCheckoutRepository{}
}

// CreateAddress records the address and assigns it an ID.
func (r *MockCheckoutRepository) CreateAddress(address *models.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailAddress != nil {
		return r.FailAddress
	}
	if address.ID == "" {
		address.ID = uuid.New().String()
	}
	r.Addresses = append(r.Addresses, *address)
	return nil
}

// CreateOrder records the order and assigns it an ID.
func (r *MockCheckoutRepository) CreateOrder(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailOrder != nil {
		return r.FailOrder
	}
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	r.Orders = append(r.Orders, *order)
	return nil
}

// CreateOrderItems records the item snapshots.
func (r *MockCheckoutRepository) CreateOrderItems(items []models.OrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailItems != nil {
		return r.FailItems
	}
	r.Items = append(r.Items, items...)
	return nil
}

// WriteCount returns the total number of insert calls that succeeded.
func (r *MockCheckoutRepository) WriteCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.Addresses) + len(r.Orders) + len(r.Items)
}
