package repository

import (
	"github.com/AlexMaina05/Comande/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListOrders(reservationID *uint) ([]entity.Order, error) {
	var orders []entity.Order
	db := r.DB.Order("id ASC")
	if reservationID != nil {
		db = db.Where("reservation_id = ?", *reservationID)
	}
	err := db.Find(&orders).Error
	return orders, err
}

// CountByType reports whether the reservation already carries an order of
// the given type. The composite unique index remains the last line of
// defence; this read just gives the create path a friendly conflict answer.
func (r *OrderRepository) CountByType(tx *gorm.DB, reservationID uint, orderType entity.OrderType) (int64, error) {
	var cnt int64
	err := tx.Model(&entity.Order{}).
		Where("reservation_id = ? AND order_type = ?", reservationID, orderType).
		Count(&cnt).Error
	return cnt, err
}

// UpdateStatusGuard flips the status only when the order is still in the
// expected state; 0 rows affected means a concurrent writer got there first.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetItem(itemID uint) (*entity.OrderItem, error) {
	var oi entity.OrderItem
	if err := r.DB.Preload("MenuItem").First(&oi, itemID).Error; err != nil {
		return nil, err
	}
	return &oi, nil
}

func (r *OrderRepository) FindItemByMenu(tx *gorm.DB, orderID, menuItemID uint) (*entity.OrderItem, error) {
	var oi entity.OrderItem
	err := tx.Where("order_id = ? AND menu_item_id = ?", orderID, menuItemID).First(&oi).Error
	if err != nil {
		return nil, err
	}
	return &oi, nil
}

func (r *OrderRepository) SaveItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Save(oi).Error
}

// IncrementItem folds a quantity, and a replacement note when non-empty,
// into an existing line in a single write. Used when a concurrent insert
// already claimed the (order, menu item) slot, so it applies the same merge
// rules as the read-then-save path.
func (r *OrderRepository) IncrementItem(tx *gorm.DB, orderID, menuItemID uint, qty int, note string) (int64, error) {
	updates := map[string]any{"quantity": gorm.Expr("quantity + ?", qty)}
	if note != "" {
		updates["special_requests"] = note
	}
	res := tx.Model(&entity.OrderItem{}).
		Where("order_id = ? AND menu_item_id = ?", orderID, menuItemID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) DeleteItem(itemID uint) (int64, error) {
	res := r.DB.Unscoped().Delete(&entity.OrderItem{}, itemID)
	return res.RowsAffected, res.Error
}

// ListItems returns the order's lines in insertion order with the live menu
// item loaded alongside each line.
func (r *OrderRepository) ListItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Preload("MenuItem").
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// ComputeTotal sums quantity times the catalog's current price. Prices are
// read live at computation time, never snapshotted at add time, so a later
// price edit moves the total of every order still referencing the item.
func (r *OrderRepository) ComputeTotal(orderID uint) (float64, error) {
	var total float64
	err := r.DB.Model(&entity.OrderItem{}).
		Select("COALESCE(SUM(order_items.quantity * menu_items.price), 0)").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Where("order_items.order_id = ?", orderID).
		Scan(&total).Error
	return total, err
}
