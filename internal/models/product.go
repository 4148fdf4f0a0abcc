package models

import "gorm.io/gorm"

// Product represents a product in the store catalog.
// An inactive product is hidden from listings and cannot be added to a cart,
// but existing order items keep referencing it.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" gorm:"type:varchar(120)" validate:"required,min=2,max=120"`
	Description string    `json:"description" gorm:"type:text" validate:"omitempty,max=500"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Stock       int       `json:"stock" validate:"gte=0"`
	ImageURL    string    `json:"image_url" gorm:"type:varchar(255)" validate:"omitempty,url"`
	CategoryID  string    `json:"category_id" gorm:"type:varchar(36);index" validate:"required"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	gorm.Model
}
