package routes

import (
	"github.com/AlexMaina05/Comande/configs"
	"github.com/AlexMaina05/Comande/controllers"
	"github.com/AlexMaina05/Comande/repository"
	"github.com/AlexMaina05/Comande/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/", func(c *gin.Context) {
		c.String(200, "The Restaurant API is active. Visit /api/... for endpoints.")
	})

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	resvRepo := repository.NewReservationRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	menuSvc := services.NewMenuService(db, menuRepo)
	resvSvc := services.NewReservationService(db, resvRepo)
	orderSvc := services.NewOrderService(db, orderRepo)
	itemSvc := services.NewOrderItemService(db, orderRepo, menuRepo)
	ticketSvc := services.NewTicketService(orderRepo, resvRepo, cfg.PublicBaseURL)

	// Controllers
	menuCtrl := controllers.NewMenuController(menuSvc)
	resvCtrl := controllers.NewReservationController(resvSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	itemCtrl := controllers.NewOrderItemController(itemSvc)
	ticketCtrl := controllers.NewTicketController(ticketSvc)

	api := r.Group("/api")
	{
		// Reservations
		api.POST("/reservations", resvCtrl.Create)
		api.GET("/reservations", resvCtrl.List)
		api.GET("/reservations/:id", resvCtrl.Get)
		api.PUT("/reservations/:id", resvCtrl.Update)
		api.DELETE("/reservations/:id", resvCtrl.Delete)
		api.POST("/reservations/:id/orders", orderCtrl.Create)

		// Menu catalog
		api.GET("/menu_items", menuCtrl.List)
		api.POST("/menu_items", menuCtrl.Create)
		api.GET("/menu_items/:id", menuCtrl.Get)
		api.PUT("/menu_items/:id", menuCtrl.Update)
		api.DELETE("/menu_items/:id", menuCtrl.Delete)

		// Orders
		api.GET("/orders", orderCtrl.List)
		api.GET("/orders/:id", orderCtrl.Get)
		api.PUT("/orders/:id", orderCtrl.UpdateStatus)
		api.POST("/orders/:id/items", itemCtrl.Add)
		api.GET("/orders/:id/print", ticketCtrl.Print)

		// Order items
		api.PUT("/order_items/:id", itemCtrl.Update)
		api.DELETE("/order_items/:id", itemCtrl.Remove)
	}
}
