package reviewRepo

import (
	"boatify/models"
)

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// GetByID retrieves a review by its unique ID.
	GetByID(id string) (*models.Review, error)
	// GetByUserAndBoat retrieves the single review a user left for a boat,
	// or nil if none exists.
	GetByUserAndBoat(userID, boatID string) (*models.Review, error)
	// GetByBoat retrieves all reviews for a boat, newest first.
	GetByBoat(boatID string) ([]models.Review, error)
	// GetAll retrieves all reviews.
	GetAll() ([]models.Review, error)
	// Create inserts a new review record.
	Create(review *models.Review) error
	// Update modifies an existing review record.
	Update(review *models.Review) error
	// Delete removes a review record by its ID.
	Delete(id string) error
	// AverageForBoat computes the arithmetic mean of all ratings for the
	// boat, 0 when it has no reviews.
	AverageForBoat(boatID string) (float64, error)
}
