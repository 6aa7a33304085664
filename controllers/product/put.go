package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/arekings/ringstech-backend/apperr"
	"github.com/arekings/ringstech-backend/forms"
	"github.com/arekings/ringstech-backend/models"
)

var minUnitPrice = decimal.NewFromFloat(1.00)

// UpdateProduct rewrites the core catalog fields of an existing product.
// The update form carries the unit price as text, so it is parsed and
// range-checked here before anything is written.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form forms.ProductUpdateForm
		if err := c.ShouldBind(&form); err != nil {
			apperr.Respond(c, apperr.Validation("Invalid form submission"))
			return
		}
		if errs := form.Validate(); len(errs) > 0 {
			c.JSON(http.StatusBadRequest, errs)
			return
		}

		price, err := decimal.NewFromString(form.ProductUnitPrice)
		if err != nil || price.LessThan(minUnitPrice) {
			c.JSON(http.StatusBadRequest, map[string][]string{
				"product_unit_price": {"Unit Price must be a minimum of Kshs 1.00"},
			})
			return
		}

		var product models.Product
		if err := db.First(&product, "product_id = ?", form.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				apperr.Respond(c, apperr.NotFound("Product not found"))
			} else {
				apperr.Respond(c, apperr.Internal("failed to fetch product", err))
			}
			return
		}

		product.ProductName = form.ProductName
		product.UnitPrice = price
		product.Description = form.Description
		product.Category = form.ProductCategory
		product.AvailableColors = form.AvailableColors
		product.IsAvailable = form.IsAvailable

		if err := db.Save(&product).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to update product", err))
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
