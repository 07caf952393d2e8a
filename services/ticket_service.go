package services

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/AlexMaina05/Comande/entity"
	"github.com/AlexMaina05/Comande/repository"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

// TicketService derives the printable kitchen/bar ticket from an order's
// current lines. It is a pure read: nothing about the order changes.
type TicketService struct {
	Repo     *repository.OrderRepository
	ResvRepo *repository.ReservationRepository

	// BaseURL is embedded in the ticket's QR code so staff can pull the
	// order back up by scanning the printout.
	BaseURL string
}

func NewTicketService(repo *repository.OrderRepository, resvRepo *repository.ReservationRepository, baseURL string) *TicketService {
	return &TicketService{Repo: repo, ResvRepo: resvRepo, BaseURL: baseURL}
}

type TicketLine struct {
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity"`
	SpecialRequests string  `json:"special_requests"`
	UnitPrice       float64 `json:"unit_price"`
	LineTotal       float64 `json:"line_total"`
}

type TicketView struct {
	OrderID      uint             `json:"order_id"`
	OrderType    entity.OrderType `json:"order_type"`
	Title        string           `json:"title"`
	CustomerName string           `json:"customer_name"`
	TableNumber  *int             `json:"table_number"`
	CreatedAt    string           `json:"created_at"`
	Lines        []TicketLine     `json:"lines"`
	Total        float64          `json:"total"`
	QRCode       string           `json:"qr_code"` // PNG data URI
}

// Format builds the ticket view for an order. typeFilter, when given, must
// name the order's own type; it exists for callers that dispatch a print
// without knowing the order's type up front.
func (s *TicketService) Format(orderID uint, typeFilter string) (*TicketView, error) {
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Order"}
		}
		return nil, err
	}

	if typeFilter != "" {
		ft := entity.OrderType(typeFilter)
		if !entity.ValidOrderType(ft) {
			return nil, validationf("type", "invalid print type '%s', use 'food' or 'beverage'", typeFilter)
		}
		if ft != order.OrderType {
			return nil, validationf("type", "print type '%s' does not match order type '%s'", ft, order.OrderType)
		}
	}

	resv, err := s.ResvRepo.FindByID(order.ReservationID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	items, err := s.Repo.ListItems(order.ID)
	if err != nil {
		return nil, err
	}
	total, err := s.Repo.ComputeTotal(order.ID)
	if err != nil {
		return nil, err
	}

	view := &TicketView{
		OrderID:   order.ID,
		OrderType: order.OrderType,
		Title:     ticketTitle(order.OrderType),
		CreatedAt: order.CreatedAt.Format(TimeLayout),
		Lines:     make([]TicketLine, 0, len(items)),
		Total:     total,
	}
	if resv != nil {
		view.CustomerName = resv.CustomerName
		view.TableNumber = resv.TableNumber
	}
	for i := range items {
		it := &items[i]
		view.Lines = append(view.Lines, TicketLine{
			Name:            it.MenuItem.Name,
			Quantity:        it.Quantity,
			SpecialRequests: it.SpecialRequests,
			UnitPrice:       it.MenuItem.Price,
			LineTotal:       it.MenuItem.Price * float64(it.Quantity),
		})
	}

	if qr, err := s.qrDataURI(order.ID); err == nil {
		view.QRCode = qr
	}
	return view, nil
}

func ticketTitle(t entity.OrderType) string {
	if t == entity.OrderTypeBeverage {
		return "Beverage Order"
	}
	return "Food Order"
}

func (s *TicketService) qrDataURI(orderID uint) (string, error) {
	png, err := qrcode.Encode(fmt.Sprintf("%s/api/orders/%d", s.BaseURL, orderID), qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
