package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotConfigured      = errors.New("admin login is not configured")
)

// Admin is the single operator allowed into the admin panel.
type Admin struct {
	Username string
}

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	Admin     Admin
	Token     string
	ExpiresIn int64
}
