package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Aman123933/amazon-project/controllers/order"
	"github.com/Aman123933/amazon-project/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		// websocket feed of newly placed orders
		orders.GET("/ws", orderControllers.OrderFeedHandler)

		authed := orders.Group("")
		authed.Use(middleware.ValidateToken)
		{
			// Order history for the authenticated user, newest first
			authed.GET("/", orderControllers.ListOrdersHandler(db))

			// One order with its items; only the owner sees it
			authed.GET("/:orderID", orderControllers.GetOrderDetailHandler(db))
		}
	}
}
