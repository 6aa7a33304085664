package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/arekings/ringstech-backend/config"
	"github.com/arekings/ringstech-backend/mailer"
	"github.com/arekings/ringstech-backend/payments"
)

// Deps carries the collaborators the route handlers need beyond the database.
type Deps struct {
	Cfg      config.Config
	Payments *payments.Client
	Mail     mailer.Mailer
	Log      *zap.SugaredLogger
}

// SetupRoutes is the single entry-point that wires up the cart, product and
// order route groups under the versioned API prefix.
func SetupRoutes(r *gin.Engine, db *gorm.DB, deps Deps) {
	api := r.Group("/ringstech/api/v1")

	SetupCartRoutes(api, db, deps)
	SetupProductRoutes(api, db, deps)
	SetupOrderRoutes(api, db)
}
