package models

import "gorm.io/gorm"

// User represents a registered customer of the store.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	FirstName  string `json:"first_name" gorm:"type:varchar(80)" validate:"required,min=2,max=80"`
	LastName   string `json:"last_name" gorm:"type:varchar(80)" validate:"required,min=2,max=80"`
	Phone      string `json:"phone" gorm:"type:varchar(20)" validate:"omitempty,max=20"`
	Address    string `json:"address" gorm:"type:text" validate:"omitempty,max=500"`
	IsAdmin    bool   `json:"is_admin" gorm:"default:false"`
	IsActive   bool   `json:"is_active" gorm:"default:true"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
