package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arekings/ringstech-backend/apperr"
	"github.com/arekings/ringstech-backend/models"
)

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			apperr.Respond(c, apperr.Validation("Product ID is required"))
			return
		}

		var product models.Product
		if err := db.First(&product, "product_id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				apperr.Respond(c, apperr.NotFound("Product not found"))
			} else {
				apperr.Respond(c, apperr.Internal("failed to retrieve product", err))
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
