package userRepo

import "hantrip/models"

// UserRepository defines access to the visitor collection.
type UserRepository interface {
	// GetByEmail returns the user, or (nil, nil) when no document matches.
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	// Upsert inserts or refreshes the user keyed by email.
	Upsert(user *models.User) error
}
