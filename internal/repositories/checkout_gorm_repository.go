package repositories

import (
	"fmt"

	"konaseema/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCheckoutRepository is a GORM implementation of CheckoutRepository.
type GORMCheckoutRepository struct {
	db *gorm.DB
}

// NewGORMCheckoutRepository creates a new instance of GORMCheckoutRepository.
func NewGORMCheckoutRepository(db *gorm.DB) *GORMCheckoutRepository {
	return &GORMCheckoutRepository{
		db: db,
	}
}

// CreateAddress inserts a delivery address and fills in its generated ID.
func (r *GORMCheckoutRepository) CreateAddress(address *models.Address) error {
	if address.ID == "" {
		address.ID = uuid.New().String()
	}
	if err := r.db.Create(address).Error; err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

// CreateOrder inserts an order and fills in its generated ID.
func (r *GORMCheckoutRepository) CreateOrder(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// CreateOrderItems bulk-inserts the line snapshots of one order.
func (r *GORMCheckoutRepository) CreateOrderItems(items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	if err := r.db.Create(&items).Error; err != nil {
		return fmt.Errorf("failed to create order items: %w", err)
	}
	return nil
}
