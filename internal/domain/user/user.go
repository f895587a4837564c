// Package user defines the user domain entity
package user

import "time"

// User represents a registered account.
// PasswordHash holds the bcrypt digest, never the plaintext password.
type User struct {
	ID           uint
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// PublicView is the user representation exposed over the API.
// It never carries credential material.
type PublicView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public returns the API-safe view of the user
func (u *User) Public() PublicView {
	return PublicView{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
