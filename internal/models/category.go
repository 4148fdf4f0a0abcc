package models

import "gorm.io/gorm"

// Category groups products in the catalog.
type Category struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string `json:"name" gorm:"type:varchar(80)" validate:"required,min=2,max=80"`
	Description string `json:"description" gorm:"type:text" validate:"omitempty,max=500"`
	gorm.Model
}
