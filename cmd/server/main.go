package main

import (
	"crypto_bot/internal/api"        // Custom package for API handlers
	"crypto_bot/internal/command"    // Custom package for the command processor
	"crypto_bot/internal/config"     // Custom package for configuration
	"crypto_bot/internal/middleware" // Custom package for middleware
	"crypto_bot/internal/price"      // Custom package for price lookup
	"crypto_bot/internal/store"      // Custom package for the user store
	"log"                            // log package is needed for logging

	// For loading .env files
	"github.com/gin-gonic/gin"                   // Gin web framework
	"github.com/line/line-bot-sdk-go/v7/linebot" // LINE messaging SDK
	"github.com/redis/go-redis/v9"               // Redis client
	"github.com/sirupsen/logrus"                 // Logrus for structured logging
	"gorm.io/driver/mysql"                       // MySQL driver for GORM
	"gorm.io/gorm"                               // GORM ORM library
)

// newStore builds the configured store backend
func newStore(cfg *config.Config) store.Store {
	switch cfg.StoreBackend {
	case "mysql":
		// Setup Data Source Name (DSN) and connect to the database
		dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
		db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
		}
		return store.NewGormStore(db)
	case "redis":
		// Setup Redis client
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		return store.NewRedisStore(rdb)
	default:
		return store.NewFileStore(cfg.StoreFile) // JSON file snapshot
	}
}

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup the LINE bot client for webhook parsing and replies
	bot, err := linebot.New(cfg.ChannelSecret, cfg.ChannelToken)
	if err != nil {
		logrus.Fatalf("failed to create LINE client: %v", err)
	}

	// Setup the store backend and the command processor
	st := newStore(cfg)
	prices := price.NewCoinGecko(cfg.PriceAPIURL)
	proc := command.NewProcessor(st, prices, cfg.LocalRate)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Webhook route (signature-checked by the SDK)
	r.POST("/webhook", api.WebhookHandler(bot, proc))

	// Health probe
	r.GET("/healthz", func(c *gin.Context) { c.Status(200) })

	// Admin routes (protected, admin only)
	r.POST("/admin/login", api.LoginHandler(cfg)) // Admin login endpoint
	adminGroup := r.Group("/admin")
	// Protect admin routes with JWT and AdminOnly middleware
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware())
	adminGroup.GET("/users", api.ListUsersHandler(st)) // List users endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
