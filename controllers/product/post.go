package productcontroller

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/arekings/ringstech-backend/apperr"
	"github.com/arekings/ringstech-backend/forms"
	"github.com/arekings/ringstech-backend/models"
)

// CreateProduct registers a new catalog product from a multipart form with an
// image upload.
func CreateProduct(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form forms.ProductForm
		if err := c.ShouldBind(&form); err != nil {
			apperr.Respond(c, apperr.Validation("Invalid form submission"))
			return
		}

		file, err := c.FormFile("product_image")
		hasImage := err == nil
		imageName := ""
		if hasImage {
			imageName = file.Filename
		}

		if errs := form.Validate(imageName, hasImage); len(errs) > 0 {
			c.JSON(http.StatusBadRequest, errs)
			return
		}

		if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
			apperr.Respond(c, apperr.Internal("failed to create upload folder", err))
			return
		}

		productID := uuid.NewString()
		savedName := productID + strings.ToLower(filepath.Ext(file.Filename))
		savePath := filepath.Join(uploadDir, savedName)
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			apperr.Respond(c, apperr.Internal("failed to save image", err))
			return
		}

		product := models.Product{
			ProductID:       productID,
			ProductName:     form.ProductName,
			UnitPrice:       decimal.NewFromFloat(form.ProductUnitPrice),
			Description:     form.Description,
			Category:        form.ProductCategory,
			AvailableColors: form.AvailableColors,
			InStock:         form.InStock,
			Brand:           form.Brand,
			Model:           form.Model,
			Battery:         form.Battery,
			Cameras:         form.Cameras,
			Processor:       form.Processor,
			Display:         form.Display,
			RAM:             form.RAM,
			Image:           savedName,
			IsAvailable:     form.IsAvailable,
		}

		if err := db.Create(&product).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to create product", err))
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
