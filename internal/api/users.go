package api

import (
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"onboarding_system/internal/domain" // Importing domain models
	"onboarding_system/internal/store"  // Credential storage
	"onboarding_system/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// ProfileResponse is the public shape of the newest registration
type ProfileResponse struct {
	Name  string `json:"name"`  // Display name
	Email string `json:"email"` // Login email
	GSTIN string `json:"gstin"` // Business tax identifier
}

// Cache TTL for the read paths, matching the listing refresh cadence
const userCacheTTL = 60 * time.Second

// ProfileHandler returns the most recently registered user
func ProfileHandler(s store.CredentialStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context() // Request-scoped context
		var cached ProfileResponse // Cached profile, if any
		// Try to get cached response
		found, err := utils.GetCache(ctx, rdb, utils.ProfileCacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, cached) // Return cached profile
			return
		}
		// Not cached, fetch the newest user from the store
		user, err := s.Latest(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// No registrations yet
				c.JSON(http.StatusNotFound, gin.H{"error": "No users found."})
				return
			}
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"error": err.Error(), // Error message
			}).Error("Profile lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error."})
			return
		}
		// Public projection only, never the hash
		resp := ProfileResponse{Name: user.Name, Email: user.Email, GSTIN: user.GSTIN}
		// Cache the response for future requests
		_ = utils.SetCache(ctx, rdb, utils.ProfileCacheKey, resp, userCacheTTL)
		c.JSON(http.StatusOK, resp) // Return the profile
	}
}

// ListUsersHandler returns every registered user, newest first. Admin
// token required; the password hash is excluded by the model's JSON tags.
func ListUsersHandler(s store.CredentialStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context() // Request-scoped context
		var cached []domain.User   // Cached listing, if any
		// Try to get cached response
		found, err := utils.GetCache(ctx, rdb, utils.UsersCacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, cached) // Return cached listing
			return
		}
		// Not cached, fetch the full listing from the store
		users, err := s.ListAll(ctx)
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"error": err.Error(), // Error message
			}).Error("User listing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error."})
			return
		}
		// An empty table is still a valid (empty) listing
		if users == nil {
			users = []domain.User{}
		}
		// Cache the listing for future requests
		_ = utils.SetCache(ctx, rdb, utils.UsersCacheKey, users, userCacheTTL)
		c.JSON(http.StatusOK, users) // Return the listing
	}
}
