package userRepo

import (
	"boatify/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// GetByUsername retrieves a user by its username.
	GetByUsername(username string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
