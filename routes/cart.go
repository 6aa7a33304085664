package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/arekings/ringstech-backend/controllers/cart"
)

func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB, deps Deps) {
	cartGroup := api.Group("/cart")
	{
		cartGroup.POST("/", cartControllers.AddItemToCartHandler(db)) // POST /cart/?cart_id=&product_id=&quantity=&color=
		cartGroup.GET("/", cartControllers.ViewCartHandler(db))       // GET  /cart/?cart_id=
		cartGroup.GET("/clear", cartControllers.ClearCartHandler(db)) // GET  /cart/clear?cart_id=
		cartGroup.POST("/new", cartControllers.CreateCartHandler(db)) // POST /cart/new

		cartGroup.POST("/checkout", cartControllers.CheckoutHandler(cartControllers.CheckoutDeps{
			DB:       db,
			Payments: deps.Payments,
			Mail:     deps.Mail,
			Log:      deps.Log,
		}))
	}
}
