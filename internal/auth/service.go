package auth

import (
	"context"
	"errors"
	"strings"

	"onboarding_system/internal/domain"   // Importing domain models
	"onboarding_system/internal/password" // Password hashing
	"onboarding_system/internal/store"    // Credential storage

	"github.com/google/uuid" // UUID generation
)

// Result of a successful login.
type Authenticated struct {
	Identity domain.Identity // External projection of the user
	Role     domain.Role     // user for store-backed logins, admin for the fixed pair
}

// Service orchestrates registration and login against the credential
// store and the password hasher. The administrator identity is resolved
// separately against a fixed credential pair and never touches the store.
type Service struct {
	store         store.CredentialStore // System of record for users
	hasher        *password.Hasher      // One-way password transform
	adminUsername string                // Fixed admin username
	adminHash     string                // bcrypt digest of the admin password, computed at startup
}

// NewService builds the auth service. The admin password is hashed once
// here so the plaintext pair is never kept or compared directly.
func NewService(s store.CredentialStore, h *password.Hasher, adminUsername, adminPassword string) (*Service, error) {
	adminHash, err := h.Hash(adminPassword)
	if err != nil {
		return nil, err // Admin password could not be hashed
	}
	return &Service{
		store:         s,
		hasher:        h,
		adminUsername: adminUsername,
		adminHash:     adminHash,
	}, nil
}

// normalizeEmail lowercases the email so that uniqueness and login
// lookups are case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user. Returns domain.ErrValidation if any field
// is empty and domain.ErrEmailTaken if the email is already registered,
// whether caught by the pre-check or by the unique index during insert.
// Registration does not establish a session.
func (s *Service) Register(ctx context.Context, name, email, gstin, plaintext string) error {
	email = normalizeEmail(email) // Case-insensitive uniqueness policy
	// All four fields are required
	if name == "" || email == "" || gstin == "" || plaintext == "" {
		return domain.ErrValidation
	}
	// Pre-check for an existing registration under this email
	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		return domain.ErrEmailTaken // Email already registered
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err // Lookup failed for another reason
	}
	// Hash the password and create the user
	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return err // Hashing failed
	}
	user := &domain.User{
		ID:           uuid.NewString(), // Fresh unique identifier
		Name:         name,
		Email:        email,
		GSTIN:        gstin,
		PasswordHash: hash,
	}
	// The unique index is the final arbiter: a registration racing past
	// the pre-check still comes back as ErrEmailTaken.
	return s.store.Insert(ctx, user)
}

// Login authenticates a store-backed user. Unknown email and wrong
// password both yield domain.ErrBadCredentials so the response does not
// reveal whether an email is registered.
func (s *Service) Login(ctx context.Context, email, plaintext string) (*Authenticated, error) {
	email = normalizeEmail(email) // Match the registration-time normalization
	// Email and password are required
	if email == "" || plaintext == "" {
		return nil, domain.ErrValidation
	}
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBadCredentials // Same error as a wrong password
		}
		return nil, err // Lookup failed
	}
	// Compare provided password with stored hash
	if !s.hasher.Verify(plaintext, user.PasswordHash) {
		return nil, domain.ErrBadCredentials
	}
	return &Authenticated{Identity: user.Identity(), Role: domain.RoleUser}, nil
}

// AdminLogin checks the fixed credential pair. It never consults the
// credential store and never creates a row. On success it returns the
// synthetic administrator identity.
func (s *Service) AdminLogin(username, plaintext string) (*Authenticated, error) {
	// Username and password are required
	if username == "" || plaintext == "" {
		return nil, domain.ErrValidation
	}
	// Both checks run so a bad username costs the same as a bad password
	usernameOK := username == s.adminUsername
	passwordOK := s.hasher.Verify(plaintext, s.adminHash)
	if !usernameOK || !passwordOK {
		return nil, domain.ErrBadAdminCredentials
	}
	return &Authenticated{Identity: domain.AdminIdentity, Role: domain.RoleAdmin}, nil
}
