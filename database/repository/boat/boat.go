package boatRepo

import (
	"boatify/models"
)

// BoatRepository defines methods for boat data access.
type BoatRepository interface {
	// GetByID retrieves a boat by its unique ID.
	GetByID(id string) (*models.Boat, error)
	// GetByName retrieves a boat by its unique name.
	GetByName(name string) (*models.Boat, error)
	// GetAll retrieves all boats regardless of status.
	GetAll() ([]models.Boat, error)
	// GetPublished retrieves all published boats.
	GetPublished() ([]models.Boat, error)
	// Create inserts a new boat record.
	Create(boat *models.Boat) error
	// Update modifies an existing boat record.
	Update(boat *models.Boat) error
	// Delete removes a boat record by its ID.
	Delete(id string) error
	// SetRating writes a recomputed average rating to the boat.
	SetRating(id string, rating float64) error
	// Search returns published boats matching the filter, plus the total
	// match count before pagination.
	Search(filter models.BoatSearchFilter) ([]models.Boat, int64, error)
	// FilterLimits aggregates attribute bounds over published boats.
	FilterLimits() (*models.BoatFilterLimits, error)
}
