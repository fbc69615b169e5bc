package models

import "gorm.io/gorm"

// Product represents a catalog item. The catalog is static reference data
// seeded at startup; this service never mutates it.
type Product struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"required"`
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Category     string `json:"category" validate:"required"`
	Image        string `json:"image" validate:"omitempty,url"`
	PriceKey     string `json:"price_key" gorm:"column:price_key" validate:"required"`
	Weight       string `json:"weight"` // default size label shown in the grid, e.g. "250g"
	IsBestSeller bool   `json:"is_best_seller"`
	IsHealthy    bool   `json:"is_healthy"`
	FoodType     string `json:"food_type" validate:"omitempty,oneof=veg nonveg"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
