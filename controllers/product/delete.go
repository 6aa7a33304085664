package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arekings/ringstech-backend/apperr"
	"github.com/arekings/ringstech-backend/models"
)

// DELETE /products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
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
				apperr.Respond(c, apperr.Internal("failed to fetch product", err))
			}
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to delete product", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Product deleted successfully"})
	}
}
