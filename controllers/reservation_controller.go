package controllers

import (
	"github.com/AlexMaina05/Comande/pkg/resp"
	"github.com/AlexMaina05/Comande/services"
	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Service: svc}
}

// POST /api/reservations
func (ctl *ReservationController) Create(c *gin.Context) {
	var req services.CreateReservationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := ctl.Service.Create(&req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /api/reservations?date=YYYY-MM-DD
func (ctl *ReservationController) List(c *gin.Context) {
	out, err := ctl.Service.List(c.Query("date"))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/reservations/:id
func (ctl *ReservationController) Get(c *gin.Context) {
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

// PUT /api/reservations/:id
func (ctl *ReservationController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req services.UpdateReservationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := ctl.Service.Update(id, &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /api/reservations/:id
//
// Cascades to the reservation's orders and their items.
func (ctl *ReservationController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.Service.Delete(id); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "reservation deleted"})
}
