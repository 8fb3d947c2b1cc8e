package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
}

// ProductInput is validated at the boundary so that malformed admin input
// (a negative price, a missing name) never reaches the store.
type ProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
}
