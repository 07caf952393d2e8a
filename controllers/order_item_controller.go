package controllers

import (
	"github.com/AlexMaina05/Comande/pkg/resp"
	"github.com/AlexMaina05/Comande/services"
	"github.com/gin-gonic/gin"
)

type OrderItemController struct {
	Service *services.OrderItemService
}

func NewOrderItemController(svc *services.OrderItemService) *OrderItemController {
	return &OrderItemController{Service: svc}
}

// POST /api/orders/:id/items
//
// Adds a line, or merges into an existing line for the same menu item.
func (ctl *OrderItemController) Add(c *gin.Context) {
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req services.AddItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := ctl.Service.Add(orderID, &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, out)
}

// PUT /api/order_items/:id
func (ctl *OrderItemController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req services.UpdateItemReq
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

// DELETE /api/order_items/:id
func (ctl *OrderItemController) Remove(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.Service.Remove(id); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order item deleted"})
}
