package services

import (
	"errors"

	"github.com/AlexMaina05/Comande/entity"
	"github.com/AlexMaina05/Comande/repository"
	"gorm.io/gorm"
)

// OrderItemService is the ledger of an order's lines: add-or-merge, quantity
// and note edits, removal, and the live total.
type OrderItemService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
}

func NewOrderItemService(db *gorm.DB, repo *repository.OrderRepository, menuRepo *repository.MenuRepository) *OrderItemService {
	return &OrderItemService{DB: db, Repo: repo, MenuRepo: menuRepo}
}

// ----- DTOs from Controller -----

type AddItemReq struct {
	MenuItemID      uint   `json:"menu_item_id"`
	Quantity        *int   `json:"quantity"`
	SpecialRequests string `json:"special_requests"`
}

type UpdateItemReq struct {
	Quantity        *int    `json:"quantity"`
	SpecialRequests *string `json:"special_requests"`
}

// Add puts a menu item on the order. If the order already carries a line for
// that menu item the quantities merge into the existing row; a duplicate row
// is never created. Special requests are overwritten only when the caller
// supplies a non-empty value. The whole check-then-write runs in one
// transaction, and a unique-index violation raced in by a concurrent add is
// folded into the existing line as well.
func (s *OrderItemService) Add(orderID uint, req *AddItemReq) (*OrderItemOut, error) {
	if req.MenuItemID == 0 {
		return nil, validationf("menu_item_id", "menu_item_id is required")
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if err := validatePositiveInt(quantity, "quantity"); err != nil {
		return nil, err
	}

	var itemID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var order entity.Order
		if err := tx.Select("id").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "Order"}
			}
			return err
		}
		var menuItem entity.MenuItem
		if err := tx.Select("id").First(&menuItem, req.MenuItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "Menu item"}
			}
			return err
		}

		existing, err := s.Repo.FindItemByMenu(tx, orderID, req.MenuItemID)
		if err == nil {
			existing.Quantity += quantity
			if req.SpecialRequests != "" {
				existing.SpecialRequests = req.SpecialRequests
			}
			if err := s.Repo.SaveItem(tx, existing); err != nil {
				return err
			}
			itemID = existing.ID
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		row := entity.OrderItem{
			OrderID:         orderID,
			MenuItemID:      req.MenuItemID,
			Quantity:        quantity,
			SpecialRequests: req.SpecialRequests,
		}
		if err := s.Repo.CreateItem(tx, &row); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost the race against a concurrent add: merge instead.
				if _, ierr := s.Repo.IncrementItem(tx, orderID, req.MenuItemID, quantity, req.SpecialRequests); ierr != nil {
					return ierr
				}
				merged, ferr := s.Repo.FindItemByMenu(tx, orderID, req.MenuItemID)
				if ferr != nil {
					return ferr
				}
				itemID = merged.ID
				return nil
			}
			return err
		}
		itemID = row.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	item, err := s.Repo.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	return toOrderItemOut(item), nil
}

func (s *OrderItemService) Update(itemID uint, req *UpdateItemReq) (*OrderItemOut, error) {
	item, err := s.Repo.GetItem(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Order item"}
		}
		return nil, err
	}

	if req.Quantity != nil {
		if err := validatePositiveInt(*req.Quantity, "quantity"); err != nil {
			return nil, err
		}
		item.Quantity = *req.Quantity
	}
	if req.SpecialRequests != nil {
		// Explicitly settable to empty to clear a note.
		item.SpecialRequests = *req.SpecialRequests
	}

	if err := s.Repo.SaveItem(s.DB, item); err != nil {
		return nil, err
	}
	return toOrderItemOut(item), nil
}

// Remove deletes a line outright; an order may end up with no items.
func (s *OrderItemService) Remove(itemID uint) error {
	affected, err := s.Repo.DeleteItem(itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{Entity: "Order item"}
	}
	return nil
}

func (s *OrderItemService) List(orderID uint) ([]OrderItemOut, error) {
	items, err := s.Repo.ListItems(orderID)
	if err != nil {
		return nil, err
	}
	out := make([]OrderItemOut, 0, len(items))
	for i := range items {
		out = append(out, *toOrderItemOut(&items[i]))
	}
	return out, nil
}

// Total is always derived from the catalog's current prices; nothing is
// snapshotted at add time.
func (s *OrderItemService) Total(orderID uint) (float64, error) {
	return s.Repo.ComputeTotal(orderID)
}
