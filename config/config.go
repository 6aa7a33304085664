package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries everything the app reads from the environment. It is loaded
// once in main and passed down to constructors; nothing else reads os.Getenv.
type Config struct {
	Port        string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	// Mobile-money gateway
	PaymentBaseURL string
	PaymentTimeout time.Duration

	// Background initiation retries
	ReconcileInterval time.Duration
	ReconcileGrace    time.Duration

	AdminAPIKey string
	UploadDir   string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string
}

// Load reads the environment. BASE_URL is the only hard requirement: without
// it checkout cannot initiate payments, so startup fails fast.
func Load() (Config, error) {
	cfg := Config{
		Port:              getenv("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DBHost:            getenv("DB_HOST", "localhost"),
		DBPort:            getenv("DB_PORT", "5432"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		PaymentBaseURL:    os.Getenv("BASE_URL"),
		PaymentTimeout:    getenvDuration("PAYMENT_TIMEOUT", 15*time.Second),
		ReconcileInterval: getenvDuration("RECONCILE_INTERVAL", time.Minute),
		ReconcileGrace:    getenvDuration("RECONCILE_GRACE", 2*time.Minute),
		AdminAPIKey:       os.Getenv("ADMIN_API_KEY"),
		UploadDir:         getenv("UPLOAD_DIR", "./uploads/products"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          getenv("SMTP_PORT", "587"),
		SMTPUser:          os.Getenv("SMTP_USER"),
		SMTPPass:          os.Getenv("SMTP_PASSWORD"),
		MailFrom:          os.Getenv("MAIL_FROM"),
	}

	if cfg.PaymentBaseURL == "" {
		return Config{}, fmt.Errorf("BASE_URL not provided")
	}

	return cfg, nil
}

// DSN builds the postgres connection string, preferring DATABASE_URL.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}
