package domain

import "errors"

// Sentinel errors for the auth subsystem. Handlers map these onto HTTP
// status codes; anything not in this list is treated as an internal error.
var (
	ErrValidation          = errors.New("all fields are required")   // Missing required field (400)
	ErrEmailTaken          = errors.New("email already registered")  // Duplicate email (409)
	ErrBadCredentials      = errors.New("invalid email or password") // Unknown email or wrong password (401)
	ErrBadAdminCredentials = errors.New("invalid admin credentials") // Failed admin login (401)
	ErrNotFound            = errors.New("not found")                 // No matching record (404)
)
