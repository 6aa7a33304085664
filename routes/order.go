package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/arekings/ringstech-backend/controllers/order"
)

func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	// websocket endpoint for real-time order updates
	api.GET("/ws/orders", orderControllers.OrderWebSocketHandler)

	orders := api.Group("/orders")
	{
		orders.GET("/:order_id", orderControllers.GetOrderByID(db))
	}
}
