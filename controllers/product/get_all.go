package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arekings/ringstech-backend/apperr"
	"github.com/arekings/ringstech-backend/models"
)

// GetProducts lists the catalog with optional search, category and
// availability filters.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		category := c.Query("category")
		availableOnly := c.Query("available") == "true"
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}

		query := db.Model(&models.Product{})

		if search != "" {
			likePattern := "%" + strings.ToLower(search) + "%"
			query = query.Where(
				"LOWER(product_name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand) LIKE ?",
				likePattern, likePattern, likePattern,
			)
		}
		if category != "" {
			query = query.Where("category = ?", category)
		}
		if availableOnly {
			query = query.Where("is_available = ?", true)
		}

		var products []models.Product
		if err := query.Order("created_at " + sortOrder).Find(&products).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to fetch products", err))
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
