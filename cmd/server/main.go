package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"folio_fetch/internal/api"        // Custom package for API handlers
	"folio_fetch/internal/config"     // Custom package for configuration
	"folio_fetch/internal/middleware" // Custom package for middleware
	"folio_fetch/internal/repository" // Custom package for record repositories
	"folio_fetch/internal/session"    // Custom package for session state

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database. A failed connection is logged and the handle
	// left nil; repositories report it per request instead of crashing.
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Errorf("failed to connect to DB: %v", err)
		db = nil
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Record repositories and session store
	users := repository.NewUserRepo(db)
	profiles := repository.NewProfileRepo(db)
	banks := repository.NewBankRepo(db)
	funds := repository.NewFundRepo(db)
	cards := repository.NewCardRepo(db)
	sessions := session.NewStore(redisClient)

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

	// Auth routes
	r.POST("/user", api.RegisterHandler(users, sessions, cfg.JWTSecret))          // Registration endpoint
	r.GET("/user", api.LoginHandler(users, profiles, sessions, cfg.JWTSecret))    // Login endpoint

	// Authenticated routes; the Redis client is injected for cache invalidation
	authed := r.Group("/api")
	authed.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), func(c *gin.Context) {
		c.Set("redisClient", redisClient)
		c.Next()
	})
	authed.POST("/logout", api.LogoutHandler(sessions)) // Logout endpoint

	// Profile routes
	authed.PUT("/profile", api.SaveProfileHandler(profiles, sessions)) // Save (upsert) profile
	authed.GET("/profile", api.GetProfileHandler(profiles))            // View profile

	// Bank account routes
	authed.GET("/banks", api.ListBankAccountsHandler(banks))                  // List bank accounts
	authed.POST("/banks", api.CreateBankAccountHandler(banks, sessions))      // Add bank account
	authed.PUT("/banks/:id", api.UpdateBankAccountHandler(banks, sessions))   // Edit bank account
	authed.DELETE("/banks/:id", api.DeleteBankAccountHandler(banks))          // Delete bank account

	// Mutual fund routes
	authed.GET("/funds", api.ListMutualFundsHandler(funds))                 // List mutual funds with ROI
	authed.POST("/funds", api.CreateMutualFundHandler(funds, sessions))     // Add mutual fund
	authed.PUT("/funds/:id", api.UpdateMutualFundHandler(funds, sessions))  // Edit mutual fund
	authed.DELETE("/funds/:id", api.DeleteMutualFundHandler(funds))         // Delete mutual fund

	// Card routes
	authed.GET("/cards", api.ListCardsHandler(cards))                 // List cards, active first
	authed.POST("/cards", api.CreateCardHandler(cards, sessions))     // Add card
	authed.PUT("/cards/:id", api.UpdateCardHandler(cards, sessions))  // Edit card
	authed.PATCH("/cards/:id/status", api.SetCardStatusHandler(cards)) // Toggle active flag
	authed.DELETE("/cards/:id", api.DeleteCardHandler(cards))          // Delete card

	// Dashboard and export
	authed.GET("/dashboard", api.DashboardHandler(banks, funds, redisClient)) // Summary + ROI snapshot
	authed.GET("/export/banks.csv", api.ExportBankAccountsHandler(banks))     // CSV export
	authed.GET("/export/funds.csv", api.ExportMutualFundsHandler(funds))      // CSV export

	// Edit-state routes
	authed.GET("/editstate", api.GetEditStateHandler(sessions))                                          // Current states
	authed.POST("/editstate/:kind/create", api.StartCreateHandler(sessions))                             // Open add form
	authed.POST("/editstate/:kind/edit/:id", api.StartEditHandler(sessions))                             // Open edit form
	authed.POST("/editstate/:kind/delete/:id", api.RequestDeleteHandler(sessions))                       // Ask to delete
	authed.POST("/editstate/:kind/confirm", api.ConfirmDeleteHandler(sessions, banks, funds, cards))     // Confirm delete
	authed.POST("/editstate/:kind/cancel", api.CancelHandler(sessions))                                  // Cancel form/delete

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
