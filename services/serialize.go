package services

import (
	"github.com/AlexMaina05/Comande/entity"
)

// Wire-shape DTOs. Entities never go out raw: timestamps are rendered in the
// documented format and order items carry the live menu item snapshot.

type MenuItemOut struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Category    entity.Category `json:"category"`
	ImageURL    string          `json:"image_url"`
}

type OrderItemOut struct {
	ID              uint    `json:"id"`
	OrderID         uint    `json:"order_id"`
	MenuItemID      uint    `json:"menu_item_id"`
	MenuItemName    string  `json:"menu_item_name"`
	MenuItemPrice   float64 `json:"menu_item_price"`
	Quantity        int     `json:"quantity"`
	SpecialRequests string  `json:"special_requests"`
}

type OrderOut struct {
	ID            uint               `json:"id"`
	ReservationID uint               `json:"reservation_id"`
	CreatedAt     string             `json:"created_at"`
	Status        entity.OrderStatus `json:"status"`
	OrderType     entity.OrderType   `json:"order_type"`
	Items         []OrderItemOut     `json:"items"`
	Total         float64            `json:"total"`
}

type ReservationOut struct {
	ID              uint                     `json:"id"`
	CustomerName    string                   `json:"customer_name"`
	PhoneNumber     string                   `json:"phone_number"`
	ReservationTime string                   `json:"reservation_time"`
	NumGuests       int                      `json:"num_guests"`
	TableNumber     *int                     `json:"table_number"`
	Status          entity.ReservationStatus `json:"status"`
	Orders          []OrderOut               `json:"orders"`
}

func toMenuItemOut(m *entity.MenuItem) *MenuItemOut {
	return &MenuItemOut{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
	}
}

func toOrderItemOut(oi *entity.OrderItem) *OrderItemOut {
	return &OrderItemOut{
		ID:              oi.ID,
		OrderID:         oi.OrderID,
		MenuItemID:      oi.MenuItemID,
		MenuItemName:    oi.MenuItem.Name,
		MenuItemPrice:   oi.MenuItem.Price,
		Quantity:        oi.Quantity,
		SpecialRequests: oi.SpecialRequests,
	}
}

func toOrderOut(o *entity.Order, items []entity.OrderItem, total float64) *OrderOut {
	out := &OrderOut{
		ID:            o.ID,
		ReservationID: o.ReservationID,
		CreatedAt:     o.CreatedAt.Format(TimeLayout),
		Status:        o.Status,
		OrderType:     o.OrderType,
		Items:         make([]OrderItemOut, 0, len(items)),
		Total:         total,
	}
	for i := range items {
		out.Items = append(out.Items, *toOrderItemOut(&items[i]))
	}
	return out
}

// ordersOut renders preloaded orders, items and menu items included, summing
// each total from the catalog's current prices.
func ordersOut(orders []entity.Order) []OrderOut {
	out := make([]OrderOut, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		var total float64
		for j := range o.Items {
			total += float64(o.Items[j].Quantity) * o.Items[j].MenuItem.Price
		}
		out = append(out, *toOrderOut(o, o.Items, total))
	}
	return out
}

func toReservationOut(r *entity.Reservation, orders []OrderOut) *ReservationOut {
	if orders == nil {
		orders = []OrderOut{}
	}
	return &ReservationOut{
		ID:              r.ID,
		CustomerName:    r.CustomerName,
		PhoneNumber:     r.PhoneNumber,
		ReservationTime: r.ReservationTime.Format(TimeLayout),
		NumGuests:       r.NumGuests,
		TableNumber:     r.TableNumber,
		Status:          r.Status,
		Orders:          orders,
	}
}
