package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/arekings/ringstech-backend/controllers/product"
	"github.com/arekings/ringstech-backend/middleware"
)

func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB, deps Deps) {
	products := api.Group("/products")
	{
		products.GET("/", productControllers.GetProducts(db))
		products.GET("/:id", productControllers.GetProductByID(db))
	}

	// Catalog mutation is admin-only, guarded by the shared API key.
	admin := api.Group("/admin/products")
	admin.Use(middleware.ValidateAPIKey(deps.Cfg.AdminAPIKey))
	{
		admin.POST("/", productControllers.CreateProduct(db, deps.Cfg.UploadDir))
		admin.PUT("/", productControllers.UpdateProduct(db))
		admin.DELETE("/:id", productControllers.DeleteProduct(db))
		admin.GET("/export", productControllers.ExportProductsToExcel(db))
	}
}
