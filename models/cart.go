package models

// CartLine is one (user, product, quantity) row. Adding the same product
// twice creates two lines; quantities are not merged (kept from the
// original storefront, see DESIGN.md).
type CartLine struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint `gorm:"not null;index" json:"user_id"`
	ProductID uint `gorm:"not null" json:"product_id"`
	Quantity  int  `gorm:"not null;default:1" json:"quantity"`
}
