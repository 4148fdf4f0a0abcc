package models

import "gorm.io/gorm"

// CartItem is one line of a user's pending cart. There is at most one row per
// (user, product) pair; adding the same product again merges quantities.
type CartItem struct {
	ID         string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID     string   `json:"user_id" gorm:"type:varchar(36);uniqueIndex:idx_cart_user_product" validate:"required"`
	ProductID  string   `json:"product_id" gorm:"type:varchar(36);uniqueIndex:idx_cart_user_product" validate:"required"`
	Quantity   int      `json:"quantity" validate:"required,gte=1"`
	Product    *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
