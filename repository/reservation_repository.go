package repository

import (
	"time"

	"github.com/AlexMaina05/Comande/entity"
	"gorm.io/gorm"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) Create(resv *entity.Reservation) error {
	return r.DB.Create(resv).Error
}

func (r *ReservationRepository) FindByID(id uint) (*entity.Reservation, error) {
	var resv entity.Reservation
	if err := r.DB.First(&resv, id).Error; err != nil {
		return nil, err
	}
	return &resv, nil
}

// detailed loads the reservation's whole order graph alongside it, in a
// fixed number of queries regardless of how many reservations match.
func (r *ReservationRepository) detailed() *gorm.DB {
	return r.DB.
		Preload("Orders", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Orders.Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Orders.Items.MenuItem")
}

func (r *ReservationRepository) FindDetailed(id uint) (*entity.Reservation, error) {
	var resv entity.Reservation
	if err := r.detailed().First(&resv, id).Error; err != nil {
		return nil, err
	}
	return &resv, nil
}

// List returns reservations with their order graphs, ordered by reservation
// time. When day is set the result is restricted to that calendar date.
func (r *ReservationRepository) List(day *time.Time) ([]entity.Reservation, error) {
	var out []entity.Reservation
	db := r.detailed().Order("reservation_time ASC")
	if day != nil {
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		db = db.Where("reservation_time >= ? AND reservation_time < ?", start, start.AddDate(0, 0, 1))
	}
	err := db.Find(&out).Error
	return out, err
}

func (r *ReservationRepository) Save(resv *entity.Reservation) error {
	return r.DB.Save(resv).Error
}

// DeleteCascade removes the reservation together with its orders and their
// items. Must run inside the caller's transaction so the cascade is atomic.
func (r *ReservationRepository) DeleteCascade(tx *gorm.DB, id uint) error {
	orderIDs := tx.Model(&entity.Order{}).Select("id").Where("reservation_id = ?", id)
	if err := tx.Unscoped().Where("order_id IN (?)", orderIDs).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().Where("reservation_id = ?", id).Delete(&entity.Order{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.Reservation{}, id).Error
}
