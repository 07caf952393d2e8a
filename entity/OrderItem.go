package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	// One line per menu item within an order; a repeated add merges into the
	// existing row. The unique index backs the merge under concurrency.
	OrderID         uint   `gorm:"uniqueIndex:idx_order_items_order_menu" json:"order_id"`
	MenuItemID      uint   `gorm:"uniqueIndex:idx_order_items_order_menu" json:"menu_item_id"`
	Quantity        int    `json:"quantity"`
	SpecialRequests string `json:"special_requests"`

	Order    Order    `json:"-"`
	MenuItem MenuItem `json:"-"` // live reference, price is never copied here
}
