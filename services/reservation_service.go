package services

import (
	"errors"
	"time"

	"github.com/AlexMaina05/Comande/entity"
	"github.com/AlexMaina05/Comande/repository"
	"gorm.io/gorm"
)

type ReservationService struct {
	DB   *gorm.DB
	Repo *repository.ReservationRepository
}

func NewReservationService(db *gorm.DB, repo *repository.ReservationRepository) *ReservationService {
	return &ReservationService{DB: db, Repo: repo}
}

// ----- DTOs from Controller -----

type CreateReservationReq struct {
	CustomerName    string `json:"customer_name"`
	PhoneNumber     string `json:"phone_number"`
	ReservationTime string `json:"reservation_time"`
	NumGuests       int    `json:"num_guests"`
	TableNumber     *int   `json:"table_number"`
	Status          string `json:"status"`
}

type UpdateReservationReq struct {
	CustomerName    *string `json:"customer_name"`
	PhoneNumber     *string `json:"phone_number"`
	ReservationTime *string `json:"reservation_time"`
	NumGuests       *int    `json:"num_guests"`
	TableNumber     *int    `json:"table_number"`
	Status          *string `json:"status"`
}

func (s *ReservationService) Create(req *CreateReservationReq) (*ReservationOut, error) {
	if err := validateNonEmpty(req.CustomerName, "customer_name"); err != nil {
		return nil, err
	}
	when, verr := parseTime(req.ReservationTime, "reservation_time")
	if verr != nil {
		return nil, verr
	}
	if err := validatePositiveInt(req.NumGuests, "num_guests"); err != nil {
		return nil, err
	}
	if req.TableNumber != nil {
		if err := validatePositiveInt(*req.TableNumber, "table_number"); err != nil {
			return nil, err
		}
	}
	status := entity.ReservationBooked
	if req.Status != "" {
		status = entity.ReservationStatus(req.Status)
		if !entity.ValidReservationStatus(status) {
			return nil, validationf("status", "invalid status '%s'", req.Status)
		}
	}

	resv := entity.Reservation{
		CustomerName:    req.CustomerName,
		PhoneNumber:     req.PhoneNumber,
		ReservationTime: when,
		NumGuests:       req.NumGuests,
		TableNumber:     req.TableNumber,
		Status:          status,
	}
	if err := s.Repo.Create(&resv); err != nil {
		return nil, err
	}
	return toReservationOut(&resv, nil), nil
}

func (s *ReservationService) Get(id uint) (*ReservationOut, error) {
	resv, err := s.Repo.FindDetailed(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Reservation"}
		}
		return nil, err
	}
	return toReservationOut(resv, ordersOut(resv.Orders)), nil
}

// List returns reservations ordered by reservation time ascending; date, if
// given, restricts the result to one calendar day.
func (s *ReservationService) List(date string) ([]ReservationOut, error) {
	var day *time.Time
	if date != "" {
		d, err := time.Parse(DateLayout, date)
		if err != nil {
			return nil, validationf("date", "invalid date format, expected YYYY-MM-DD")
		}
		day = &d
	}
	reservations, err := s.Repo.List(day)
	if err != nil {
		return nil, err
	}
	out := make([]ReservationOut, 0, len(reservations))
	for i := range reservations {
		out = append(out, *toReservationOut(&reservations[i], ordersOut(reservations[i].Orders)))
	}
	return out, nil
}

// Update re-validates every changed field with the same rules as Create.
// Fields absent from the request stay untouched.
func (s *ReservationService) Update(id uint, req *UpdateReservationReq) (*ReservationOut, error) {
	resv, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Reservation"}
		}
		return nil, err
	}

	if req.CustomerName != nil {
		if err := validateNonEmpty(*req.CustomerName, "customer_name"); err != nil {
			return nil, err
		}
		resv.CustomerName = *req.CustomerName
	}
	if req.PhoneNumber != nil {
		resv.PhoneNumber = *req.PhoneNumber
	}
	if req.ReservationTime != nil {
		when, verr := parseTime(*req.ReservationTime, "reservation_time")
		if verr != nil {
			return nil, verr
		}
		resv.ReservationTime = when
	}
	if req.NumGuests != nil {
		if err := validatePositiveInt(*req.NumGuests, "num_guests"); err != nil {
			return nil, err
		}
		resv.NumGuests = *req.NumGuests
	}
	if req.TableNumber != nil {
		if err := validatePositiveInt(*req.TableNumber, "table_number"); err != nil {
			return nil, err
		}
		resv.TableNumber = req.TableNumber
	}
	if req.Status != nil {
		status := entity.ReservationStatus(*req.Status)
		if !entity.ValidReservationStatus(status) {
			return nil, validationf("status", "invalid status '%s'", *req.Status)
		}
		resv.Status = status
	}

	if err := s.Repo.Save(resv); err != nil {
		return nil, err
	}
	return s.Get(resv.ID)
}

// Delete removes the reservation and cascades to its orders and items in one
// transaction. A repeated delete reports NotFound, it is not idempotent.
func (s *ReservationService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var resv entity.Reservation
		if err := tx.Select("id").First(&resv, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "Reservation"}
			}
			return err
		}
		return s.Repo.DeleteCascade(tx, id)
	})
}
