// Package entity contains the core business objects of the CTF database.
package entity

import "time"

// User is a player or operator account.
type User struct {
	ID           int64     // Database-assigned identifier.
	Username     string    // Unique login name.
	PasswordHash string    // bcrypt hash of the password; never the plaintext.
	Points       int       // Score accumulated from solved questions.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
