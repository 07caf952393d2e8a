package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	// At most one order per (reservation, type). The composite unique index
	// is the authoritative guard; the service layer translates a violation
	// into a conflict instead of trusting caller-side checks.
	ReservationID uint        `gorm:"uniqueIndex:idx_orders_reservation_type" json:"reservation_id"`
	OrderType     OrderType   `gorm:"uniqueIndex:idx_orders_reservation_type" json:"order_type"`
	Status        OrderStatus `json:"status"`

	Reservation Reservation `json:"-"`
	Items       []OrderItem `json:"-"`
}
