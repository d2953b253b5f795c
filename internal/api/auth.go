package api

import (
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes
	"time"     // Token lifetime

	"onboarding_system/internal/auth"   // Auth service
	"onboarding_system/internal/domain" // Importing domain models
	"onboarding_system/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// Session tokens are valid for 24 hours
const sessionTokenTTL = 24 * time.Hour

// Request struct for registration
type RegisterRequest struct {
	Name     string `json:"name"`     // Display name
	Email    string `json:"email"`    // Login email
	GSTIN    string `json:"gstin"`    // Business tax identifier
	Password string `json:"password"` // Plaintext password, hashed before storage
}

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email"`    // Login email
	Password string `json:"password"` // Plaintext password
}

// Request struct for admin login
type AdminLoginRequest struct {
	Username string `json:"username"` // Fixed admin username
	Password string `json:"password"` // Admin password
}

// RegisterHandler creates a new user account
func RegisterHandler(svc *auth.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
			return
		}
		// Register the user; field presence is validated by the service
		err := svc.Register(c.Request.Context(), req.Name, req.Email, req.GSTIN, req.Password)
		switch {
		case err == nil:
			// Fall through to the success path below
		case errors.Is(err, domain.ErrValidation):
			// Missing field, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
			return
		case errors.Is(err, domain.ErrEmailTaken):
			// Duplicate email is an expected outcome, not a server fault
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered."})
			return
		default:
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"email": req.Email,   // Requested email
				"error": err.Error(), // Error message
			}).Error("Registration failed") // Log registration failure
			// Return a generic message, detail stays server-side
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error."})
			return
		}
		// Invalidate the listing and profile caches so they include the new user
		_ = utils.InvalidateUserCaches(c.Request.Context(), rdb)
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"email": req.Email, // Registered email
		}).Info("User registered")
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "Registration successful."})
	}
}

// LoginHandler authenticates a user and returns a session token
func LoginHandler(svc *auth.Service, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required."})
			return
		}
		// Authenticate against the credential store
		authed, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		switch {
		case err == nil:
			// Fall through to the success path below
		case errors.Is(err, domain.ErrValidation):
			// Missing field, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required."})
			return
		case errors.Is(err, domain.ErrBadCredentials):
			// Same message for unknown email and wrong password
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
			return
		default:
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"email": req.Email,   // Requested email
				"error": err.Error(), // Error message
			}).Error("Login failed") // Log login failure
			// Return a generic message, detail stays server-side
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error."})
			return
		}
		// Issue a signed session token carrying the identity and role
		token, err := utils.GenerateJWT(authed.Identity, authed.Role, jwtSecret, sessionTokenTTL)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error."})
			return
		}
		// Return the identity projection and the token
		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful.", // Success message
			"token":   token,               // Signed session token
			"user":    authed.Identity,     // Identity projection, never the hash
		})
	}
}

// AdminLoginHandler authenticates the fixed administrator pair and
// returns an admin session token. This path never touches the
// credential store.
func AdminLoginHandler(svc *auth.Service, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminLoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
			return
		}
		// Check against the hashed fixed pair
		authed, err := svc.AdminLogin(req.Username, req.Password)
		switch {
		case err == nil:
			// Fall through to the success path below
		case errors.Is(err, domain.ErrValidation):
			// Missing field, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
			return
		default:
			// Bad pair is an expected outcome, not a server fault
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin credentials."})
			return
		}
		// Issue a signed session token with the admin role claim
		token, err := utils.GenerateJWT(authed.Identity, authed.Role, jwtSecret, sessionTokenTTL)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error."})
			return
		}
		// Return the synthetic admin identity and the token
		c.JSON(http.StatusOK, gin.H{
			"message": "Admin login successful.", // Success message
			"token":   token,                     // Signed session token
			"user":    authed.Identity,           // Synthetic admin identity
		})
	}
}
