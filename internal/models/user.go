package models

import "time"

// User represents a registered account on the server.
type User struct {
	ID           string     `json:"id"`            // user UUID
	Username     string     `json:"username"`      // unique username
	PasswordHash string     `json:"password_hash"` // bcrypt hash of the password
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"` // nil until the first login
}

// RefreshToken represents a user's refresh token. Only a digest of the
// opaque token is stored; the raw value exists client-side only.
type RefreshToken struct {
	TokenHash string    `json:"token_hash"` // SHA-256 hex of the raw token
	UserID    string    `json:"user_id"`    // owning user ID
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
