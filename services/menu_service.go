package services

import (
	"errors"

	"github.com/AlexMaina05/Comande/entity"
	"github.com/AlexMaina05/Comande/repository"
	"gorm.io/gorm"
)

type MenuService struct {
	DB   *gorm.DB
	Repo *repository.MenuRepository
}

func NewMenuService(db *gorm.DB, repo *repository.MenuRepository) *MenuService {
	return &MenuService{DB: db, Repo: repo}
}

type MenuItemIn struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
}

func (s *MenuService) List(category string) ([]MenuItemOut, error) {
	if category != "" && !entity.ValidCategory(entity.Category(category)) {
		return nil, validationf("category", "invalid category '%s'", category)
	}
	items, err := s.Repo.List(entity.Category(category))
	if err != nil {
		return nil, err
	}
	out := make([]MenuItemOut, 0, len(items))
	for i := range items {
		out = append(out, *toMenuItemOut(&items[i]))
	}
	return out, nil
}

func (s *MenuService) Get(id uint) (*MenuItemOut, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Menu item"}
		}
		return nil, err
	}
	return toMenuItemOut(item), nil
}

func (s *MenuService) Create(in *MenuItemIn) (*MenuItemOut, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	item := entity.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    entity.Category(in.Category),
		ImageURL:    in.ImageURL,
	}
	if err := s.Repo.Create(&item); err != nil {
		return nil, err
	}
	return toMenuItemOut(&item), nil
}

// Update is an administrative edit. A price change deliberately moves the
// computed total of every open order referencing the item.
func (s *MenuService) Update(id uint, in *MenuItemIn) (*MenuItemOut, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Menu item"}
		}
		return nil, err
	}
	if err := s.validate(in); err != nil {
		return nil, err
	}
	item.Name = in.Name
	item.Description = in.Description
	item.Price = in.Price
	item.Category = entity.Category(in.Category)
	item.ImageURL = in.ImageURL
	if err := s.Repo.Update(item); err != nil {
		return nil, err
	}
	return toMenuItemOut(item), nil
}

// Delete removes a catalog item. An item still referenced by order lines
// cannot be removed: every stored line must keep resolving to a live catalog
// row for names, prices and totals. The check and the delete share a
// transaction so a line added in between cannot be orphaned.
func (s *MenuService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&entity.OrderItem{}).Where("menu_item_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return &ConflictError{Message: "menu item is referenced by existing order items"}
		}
		affected, err := s.Repo.Delete(tx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return &NotFoundError{Entity: "Menu item"}
		}
		return nil
	})
}

func (s *MenuService) validate(in *MenuItemIn) error {
	if err := validateNonEmpty(in.Name, "name"); err != nil {
		return err
	}
	if err := validateNonNegativeNumber(in.Price, "price"); err != nil {
		return err
	}
	if !entity.ValidCategory(entity.Category(in.Category)) {
		return validationf("category", "invalid category '%s'", in.Category)
	}
	return nil
}
