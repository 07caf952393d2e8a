package controllers

import (
	"github.com/AlexMaina05/Comande/pkg/resp"
	"github.com/AlexMaina05/Comande/services"
	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Service: svc}
}

// GET /api/menu_items?category=
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.Service.List(c.Query("category"))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/menu_items/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	item, err := ctl.Service.Get(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /api/menu_items
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Service.Create(&req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /api/menu_items/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Service.Update(id, &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/menu_items/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.Service.Delete(id); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}
