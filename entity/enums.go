package entity

// Closed enum types. Raw strings coming off the wire must pass through the
// Valid* helpers before they are stored; invalid values are rejected at the
// boundary, never persisted.

type Category string

const (
	CategoryAppetizer  Category = "appetizer"
	CategoryMainCourse Category = "main_course"
	CategoryDessert    Category = "dessert"
	CategoryBeverage   Category = "beverage"
	CategoryOther      Category = "other"
)

func ValidCategory(c Category) bool {
	switch c {
	case CategoryAppetizer, CategoryMainCourse, CategoryDessert, CategoryBeverage, CategoryOther:
		return true
	}
	return false
}

type ReservationStatus string

const (
	ReservationBooked    ReservationStatus = "booked"
	ReservationSeated    ReservationStatus = "seated"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

func ValidReservationStatus(s ReservationStatus) bool {
	switch s {
	case ReservationBooked, ReservationSeated, ReservationCompleted, ReservationCancelled:
		return true
	}
	return false
}

type OrderType string

const (
	OrderTypeFood     OrderType = "food"
	OrderTypeBeverage OrderType = "beverage"
)

func ValidOrderType(t OrderType) bool {
	return t == OrderTypeFood || t == OrderTypeBeverage
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
)

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderPreparing, OrderReady, OrderServed, OrderPaid, OrderCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further status change may leave s.
func (s OrderStatus) Terminal() bool {
	return s == OrderPaid || s == OrderCancelled
}
