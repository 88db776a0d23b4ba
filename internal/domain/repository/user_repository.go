// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the use cases and the infrastructure layer.
package repository

import (
	"context"

	"ctf/internal/domain/entity"
)

// UserRepository defines the operations for account persistence.
type UserRepository interface {
	// Create persists a new user. It returns ErrUserAlreadyExists when the username is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername returns ErrUserNotFound when no account has that username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID returns ErrUserNotFound when no account has that ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// AddPoints adjusts the user's score by delta, which may be negative.
	// It returns ErrUserNotFound when no account has that ID.
	AddPoints(ctx context.Context, id int64, delta int) error

	// Count returns the number of stored accounts.
	Count(ctx context.Context) (int64, error)
}
