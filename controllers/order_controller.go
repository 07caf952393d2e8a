package controllers

import (
	"strconv"

	"github.com/AlexMaina05/Comande/pkg/resp"
	"github.com/AlexMaina05/Comande/services"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// POST /api/reservations/:id/orders
func (ctl *OrderController) Create(c *gin.Context) {
	reservationID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := ctl.Service.Create(reservationID, &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /api/orders?reservation_id=
func (ctl *OrderController) List(c *gin.Context) {
	var reservationID *uint
	if raw := c.Query("reservation_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			resp.BadRequest(c, "reservation_id must be a positive integer")
			return
		}
		u := uint(id)
		reservationID = &u
	}
	out, err := ctl.Service.List(reservationID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/orders/:id
func (ctl *OrderController) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	out, err := ctl.Service.Get(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, out)
}

// PUT /api/orders/:id
//
// Status changes only; reservation and type are immutable after creation.
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req services.UpdateOrderStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := ctl.Service.UpdateStatus(id, &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, out)
}
