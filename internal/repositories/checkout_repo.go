package repositories

import "konaseema/internal/models"

// CheckoutRepository defines the write surface of a checkout: each insert
// returns with the generated identifier filled in. The three writes are
// issued strictly in this order by the checkout service; there is no
// compensation for a failure partway through.
type CheckoutRepository interface {
	CreateAddress(address *models.Address) error
	CreateOrder(order *models.Order) error
	CreateOrderItems(items []models.OrderItem) error
}
