package entity

import (
	"time"

	"gorm.io/gorm"
)

type Reservation struct {
	gorm.Model
	CustomerName    string            `json:"customer_name"`
	PhoneNumber     string            `json:"phone_number"`
	ReservationTime time.Time         `json:"reservation_time"`
	NumGuests       int               `json:"num_guests"`
	TableNumber     *int              `json:"table_number"`
	Status          ReservationStatus `json:"status"`

	// Orders belong exclusively to their reservation; deleting the
	// reservation removes them (and their items) in the same transaction.
	Orders []Order `json:"-"`
}
