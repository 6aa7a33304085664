package productcontroller

import (
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/arekings/ringstech-backend/apperr"
	"github.com/arekings/ringstech-backend/models"
)

// ExportProductsToExcel streams the whole catalog as an .xlsx download.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to fetch products", err))
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			apperr.Respond(c, apperr.Internal("failed to create Excel sheet", err))
			return
		}

		headers := []string{
			"ProductID", "ProductName", "UnitPrice", "Category", "Description",
			"AvailableColors", "InStock", "Brand", "Model", "Battery", "Cameras",
			"Processor", "Display", "RAM", "IsAvailable", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ProductID)
			row.AddCell().SetValue(p.ProductName)
			row.AddCell().SetValue(p.UnitPrice.StringFixed(2))
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.AvailableColors)
			row.AddCell().SetValue(p.InStock)
			row.AddCell().SetValue(p.Brand)
			row.AddCell().SetValue(p.Model)
			row.AddCell().SetValue(p.Battery)
			row.AddCell().SetValue(p.Cameras)
			row.AddCell().SetValue(p.Processor)
			row.AddCell().SetValue(p.Display)
			row.AddCell().SetValue(p.RAM)
			row.AddCell().SetValue(p.IsAvailable)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			apperr.Respond(c, apperr.Internal("failed to write Excel file", err))
			return
		}
	}
}
