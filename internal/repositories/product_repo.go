package repositories

import (
	"konaseema/internal/models"
)

// ProductRepository defines the interface for catalog data access. The
// catalog is reference data: Create exists only for seeding at startup.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByCategory(category string) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
}
