package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv"   // For loading .env files
	"golang.org/x/crypto/bcrypt" // For the default hashing cost
)

// Config holds the application configuration
type Config struct {
	AppPort         string // Application port
	DBUser          string // Database user
	DBPassword      string // Database password
	DBHost          string // Database host
	DBPort          string // Database port
	DBName          string // Database name
	JWTSecret       string // Session token signing key
	RedisAddr       string // Redis server address
	RedisPass       string // Redis password
	RedisDB         int    // Redis database number
	BcryptCost      int    // Password hashing work factor
	AdminUsername   string // Fixed admin username
	AdminPassword   string // Admin password, hashed at startup and never compared in plaintext
	LoginRatePerMin int    // Login attempts allowed per client IP per minute (0 disables)
	IsProd          bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:         os.Getenv("APP_PORT"),                     // Application port
		DBUser:          os.Getenv("DB_USER"),                      // Database user
		DBPassword:      os.Getenv("DB_PASSWORD"),                  // Database password
		DBHost:          os.Getenv("DB_HOST"),                      // Database host
		DBPort:          os.Getenv("DB_PORT"),                      // Database port
		DBName:          os.Getenv("DB_NAME"),                      // Database name
		JWTSecret:       os.Getenv("JWT_SECRET"),                   // Session token signing key
		RedisAddr:       os.Getenv("REDIS_ADDR"),                   // Redis server address
		RedisPass:       os.Getenv("REDIS_PASS"),                   // Redis password
		RedisDB:         redisDB,                                   // Redis database number
		BcryptCost:      intEnv("BCRYPT_COST", bcrypt.DefaultCost), // Hashing work factor
		AdminUsername:   defaultEnv("ADMIN_USERNAME", "admin"),     // Fixed admin username
		AdminPassword:   defaultEnv("ADMIN_PASSWORD", "root"),      // Fixed admin password
		LoginRatePerMin: intEnv("LOGIN_RATE_PER_MIN", 30),          // Login throttle budget
		IsProd:          os.Getenv("IS_PROD") == "true",            // Is production environment
	}
}

// defaultEnv returns the environment value or a fallback when unset
func defaultEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// intEnv returns the environment value as an int or a fallback
func intEnv(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}
