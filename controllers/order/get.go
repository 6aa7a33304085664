package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arekings/ringstech-backend/apperr"
	"github.com/arekings/ringstech-backend/models"
)

// GET /orders/:order_id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("order_id")
		if orderID == "" {
			apperr.Respond(c, apperr.Validation("Order ID is required"))
			return
		}

		var order models.Order
		if err := db.First(&order, "order_id = ?", orderID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				apperr.Respond(c, apperr.NotFound("Order not found"))
			} else {
				apperr.Respond(c, apperr.Internal("failed to fetch order", err))
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
