package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/arekings/ringstech-backend/config"
	"github.com/arekings/ringstech-backend/mailer"
	"github.com/arekings/ringstech-backend/models"
	"github.com/arekings/ringstech-backend/payments"
	"github.com/arekings/ringstech-backend/routes"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	log.Info("starting application")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db := initDatabase(cfg, log)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	payClient := payments.NewClient(cfg.PaymentBaseURL, cfg.PaymentTimeout, log)
	mail := mailer.New(cfg, log)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded product images
	r.Static("/uploads", cfg.UploadDir)

	routes.SetupRoutes(r, db, routes.Deps{
		Cfg:      cfg,
		Payments: payClient,
		Mail:     mail,
		Log:      log,
	})

	// Retry unacknowledged payment initiations in the background.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	reconciler := payments.NewReconciler(db, payClient, cfg.ReconcileInterval, cfg.ReconcileGrace, log)
	go reconciler.Run(ctx)

	log.Infof("server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection.
func initDatabase(cfg config.Config, log *zap.SugaredLogger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	return db
}
