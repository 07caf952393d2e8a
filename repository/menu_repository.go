package repository

import (
	"github.com/AlexMaina05/Comande/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// List returns items in insertion order, optionally restricted to a category.
func (r *MenuRepository) List(category entity.Category) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	db := r.DB.Order("id ASC")
	if category != "" {
		db = db.Where("category = ?", category)
	}
	err := db.Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

// Delete removes the row for good; soft-deleted rows would keep shadowing
// the catalog in joins. Runs on the caller's transaction alongside the
// reference check.
func (r *MenuRepository) Delete(tx *gorm.DB, id uint) (int64, error) {
	res := tx.Unscoped().Delete(&entity.MenuItem{}, id)
	return res.RowsAffected, res.Error
}
