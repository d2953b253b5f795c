package main

import (
	"context"                               // context package is needed for Redis operations
	"log"                                   // log package is needed for logging
	"onboarding_system/internal/api"        // Custom package for API handlers
	"onboarding_system/internal/auth"       // Custom package for the auth service
	"onboarding_system/internal/config"     // Custom package for configuration
	"onboarding_system/internal/middleware" // Custom package for middleware
	"onboarding_system/internal/password"   // Custom package for password hashing
	"onboarding_system/internal/store"      // Custom package for credential storage

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

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	// TranslateError so duplicate-key violations surface as gorm.ErrDuplicatedKey
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Wire the auth subsystem: store, hasher, service
	credStore := store.NewCredentialStore(db)
	hasher := password.NewHasher(cfg.BcryptCost)
	authService, err := auth.NewService(credStore, hasher, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		logrus.Fatalf("failed to initialize auth service: %v", err)
	}

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

	// Per-IP throttle for the login routes
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRatePerMin)

	// Auth routes
	r.POST("/register", api.RegisterHandler(authService, redisClient))                            // Registration endpoint
	r.POST("/login", loginLimiter.Handler(), api.LoginHandler(authService, cfg.JWTSecret))        // Login endpoint
	r.POST("/admin/login", loginLimiter.Handler(), api.AdminLoginHandler(authService, cfg.JWTSecret)) // Admin login endpoint

	// Public profile route (most recent registration)
	r.GET("/profile", api.ProfileHandler(credStore, redisClient)) // Profile endpoint

	// Admin listing (protected, admin only)
	r.GET("/users",
		middleware.JWTAuthMiddleware(cfg.JWTSecret), // Validate the session token
		middleware.AdminOnlyMiddleware(),            // Require the admin role claim
		api.ListUsersHandler(credStore, redisClient)) // List users endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
