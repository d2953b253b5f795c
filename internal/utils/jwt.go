package utils

import (
	"time" // Time for token expiration

	"onboarding_system/internal/domain" // Importing domain models

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// JWT Claims
type Claims struct {
	Identity             domain.Identity `json:"identity"` // Projection of the authenticated user
	Role                 domain.Role     `json:"role"`     // user or admin
	jwt.RegisteredClaims                 // Standard JWT claims
}

// GenerateJWT creates a signed session token for an authenticated
// identity. The client persists only this token; protected routes
// re-validate it instead of trusting client-held role claims.
func GenerateJWT(identity domain.Identity, role domain.Role, secret string, ttl time.Duration) (string, error) {
	// Set token claims
	claims := Claims{
		Identity: identity, // Identity projection, never the hash
		Role:     role,     // Role claim checked by the admin middleware
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)), // Token expiry
			IssuedAt:  jwt.NewNumericDate(time.Now()),          // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a session token string.
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	// Check for parsing errors
	if err != nil {
		return nil, err // Return error if parsing fails
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil // Return claims if valid
	}
	// Return error if token is invalid
	return nil, jwt.ErrSignatureInvalid
}
