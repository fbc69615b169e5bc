package services

import (
	"konaseema/internal/models"
	"konaseema/internal/pricing"
	"konaseema/internal/repositories"
)

// ProductService serves the read-only catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves the whole catalog.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductsByCategory retrieves the catalog filtered to one category.
// "All" and the empty string mean no filter.
func (s *ProductService) GetProductsByCategory(category string) ([]models.Product, error) {
	if category == "" || category == "All" {
		return s.repo.GetAll()
	}
	return s.repo.GetByCategory(category)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// UnitPrice resolves the price of a product in a given size from the price
// table. An unknown key or size resolves to zero.
func (s *ProductService) UnitPrice(product *models.Product, size string) int64 {
	if size == "" {
		size = product.Weight
	}
	return pricing.Price(product.PriceKey, size)
}
