package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks a username/password pair.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (Admin, error)
}

// StaticVerifier holds one configured admin account with a bcrypt hash.
type StaticVerifier struct {
	username string
	hash     []byte
}

func NewStaticVerifier(username, passwordHash string) *StaticVerifier {
	return &StaticVerifier{username: username, hash: []byte(passwordHash)}
}

// NewStaticVerifierFromPassword hashes a plaintext password at startup.
// Meant for local runs where no hash is configured.
func NewStaticVerifierFromPassword(username, password string) (*StaticVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &StaticVerifier{username: username, hash: hash}, nil
}

func (v *StaticVerifier) Verify(_ context.Context, username, password string) (Admin, error) {
	if v.username == "" || len(v.hash) == 0 {
		return Admin{}, ErrNotConfigured
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	// always run bcrypt so a wrong username costs the same as a wrong password
	passErr := bcrypt.CompareHashAndPassword(v.hash, []byte(password))
	if !userOK || passErr != nil {
		return Admin{}, ErrInvalidCredentials
	}
	return Admin{Username: v.username}, nil
}
