package store

import (
	"context"
	"errors"

	"onboarding_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// CredentialStore is the durable record of registered users. The email
// unique index is the final arbiter of uniqueness: a racing insert
// surfaces as domain.ErrEmailTaken, not a raw driver error.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) error
	Latest(ctx context.Context) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
}

// userStore implements CredentialStore on top of GORM.
type userStore struct {
	db *gorm.DB // Database handle
}

// NewCredentialStore returns a GORM-backed CredentialStore.
func NewCredentialStore(db *gorm.DB) CredentialStore {
	return &userStore{db: db}
}

// FindByEmail looks up a user by email. Returns domain.ErrNotFound if no
// user is registered under that email.
func (s *userStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User // User struct to hold data
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound // No user under that email
		}
		return nil, err // Other database error
	}
	return &user, nil
}

// Insert creates a new user row. A duplicate email, including one raced
// in by a concurrent registration, is reported as domain.ErrEmailTaken.
func (s *userStore) Insert(ctx context.Context, user *domain.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken // Unique index rejected the email
		}
		return err // Other database error
	}
	return nil
}

// Latest returns the most recently created user, or domain.ErrNotFound
// if none exist.
func (s *userStore) Latest(ctx context.Context) (*domain.User, error) {
	var user domain.User // User struct to hold data
	if err := s.db.WithContext(ctx).Order("created_at desc").First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound // No users registered yet
		}
		return nil, err // Other database error
	}
	return &user, nil
}

// ListAll returns every user, newest first.
func (s *userStore) ListAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User // Slice to hold users
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err // Database error
	}
	return users, nil
}
