package domain

import "time"

// User Model
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`           // UUID assigned at registration
	Name         string    `gorm:"not null" json:"name"`                   // Display name
	Email        string    `gorm:"unique;not null" json:"email"`           // Unique login key, stored lowercase
	GSTIN        string    `gorm:"column:gstin;not null" json:"gstin"`     // Business tax identifier, stored verbatim
	PasswordHash string    `gorm:"not null" json:"-"`                      // bcrypt digest, never serialized
	CreatedAt    time.Time `gorm:"autoCreateTime;index" json:"created_at"` // Registration time, default sort key
}

// Identity is the projection of a User that crosses the API boundary.
// The password hash never appears here.
type Identity struct {
	ID    string `json:"id"`    // Empty for the synthetic admin identity
	Name  string `json:"name"`  // Display name
	Email string `json:"email"` // Login email
	GSTIN string `json:"gstin"` // Business tax identifier
}

// Identity returns the external projection of the user.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Name: u.Name, Email: u.Email, GSTIN: u.GSTIN}
}

// Role determines which protected routes a session may reach.
type Role string

// Roles
const (
	RoleGuest Role = "guest" // No authenticated identity
	RoleUser  Role = "user"  // Any credential-store backed login
	RoleAdmin Role = "admin" // The synthetic administrator identity only
)

// AdminIdentity is the fixed identity synthesized for a successful admin
// login. The administrator has no User row and no ID.
var AdminIdentity = Identity{Name: "Admin", Email: "admin@system.com"}
