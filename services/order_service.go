package services

import (
	"errors"

	"github.com/AlexMaina05/Comande/entity"
	"github.com/AlexMaina05/Comande/repository"
	"gorm.io/gorm"
)

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

// ----- DTOs from Controller -----

type CreateOrderReq struct {
	OrderType string `json:"order_type"`
}

type UpdateOrderStatusReq struct {
	Status string `json:"status"`
}

// Create attaches a new order to a reservation. At most one order may exist
// per (reservation, type): the check and the insert run in one transaction,
// and a unique-index violation from a concurrent create is reported as the
// same conflict instead of producing a duplicate.
func (s *OrderService) Create(reservationID uint, req *CreateOrderReq) (*OrderOut, error) {
	orderType := entity.OrderType(req.OrderType)
	if !entity.ValidOrderType(orderType) {
		return nil, validationf("order_type", "invalid or missing order_type, must be 'food' or 'beverage'")
	}

	var order entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var resv entity.Reservation
		if err := tx.Select("id").First(&resv, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "Reservation"}
			}
			return err
		}

		cnt, err := s.Repo.CountByType(tx, reservationID, orderType)
		if err != nil {
			return err
		}
		if cnt > 0 {
			return &ConflictError{Message: "a " + string(orderType) + " order already exists for this reservation"}
		}

		order = entity.Order{
			ReservationID: reservationID,
			OrderType:     orderType,
			Status:        entity.OrderPending,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &ConflictError{Message: "a " + string(orderType) + " order already exists for this reservation"}
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderOut(&order, nil, 0), nil
}

func (s *OrderService) Get(orderID uint) (*OrderOut, error) {
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Order"}
		}
		return nil, err
	}
	return s.detail(order)
}

func (s *OrderService) List(reservationID *uint) ([]OrderOut, error) {
	orders, err := s.Repo.ListOrders(reservationID)
	if err != nil {
		return nil, err
	}
	out := make([]OrderOut, 0, len(orders))
	for i := range orders {
		o, err := s.detail(&orders[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, nil
}

// UpdateStatus moves an order to a new status. Statuses are staff-set, so
// forward skips and a move to cancelled are allowed from any open state;
// paid and cancelled are terminal. The write is guarded on the status the
// decision was made against, so a concurrent close cannot be overwritten.
func (s *OrderService) UpdateStatus(orderID uint, req *UpdateOrderStatusReq) (*OrderOut, error) {
	newStatus := entity.OrderStatus(req.Status)
	if !entity.ValidOrderStatus(newStatus) {
		return nil, validationf("status", "invalid status '%s'", req.Status)
	}

	var order *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var o entity.Order
		if err := tx.First(&o, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "Order"}
			}
			return err
		}
		if o.Status.Terminal() {
			return &InvalidTransitionError{From: o.Status, To: newStatus}
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, newStatus)
		if err != nil {
			return err
		}
		if affected == 0 {
			return &InvalidTransitionError{From: o.Status, To: newStatus}
		}
		o.Status = newStatus
		order = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.detail(order)
}

func (s *OrderService) detail(order *entity.Order) (*OrderOut, error) {
	items, err := s.Repo.ListItems(order.ID)
	if err != nil {
		return nil, err
	}
	total, err := s.Repo.ComputeTotal(order.ID)
	if err != nil {
		return nil, err
	}
	return toOrderOut(order, items, total), nil
}
