package domain

import "time"

// User represents an account holder of the remote store.
type User struct {
	UserID       string    `json:"userID"` // Primary Key (e.g., UUID)
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
