package reservationRepo

import (
	"context"
	"errors"
	"time"

	"boatify/models"
)

// ErrDatesUnavailable is returned by the transactional write helpers when the
// requested interval overlaps a blocking-status reservation for the same boat.
var ErrDatesUnavailable = errors.New("selected dates are not available")

// ReservationRepository defines methods for reservation data access.
type ReservationRepository interface {
	// GetByID retrieves a reservation by its unique ID.
	GetByID(id string) (*models.Reservation, error)
	// GetByUser retrieves a user's reservations sorted by start date.
	GetByUser(userID string) ([]models.Reservation, error)
	// GetAll retrieves all reservations sorted by creation time, newest first.
	GetAll() ([]models.Reservation, error)
	// CreateIfAvailable inserts the reservation only if no blocking-status
	// reservation overlaps its interval. The conflict check and the insert
	// run in one transaction; returns ErrDatesUnavailable on overlap.
	CreateIfAvailable(ctx context.Context, res *models.Reservation) error
	// UpdateDatesIfAvailable moves a reservation's interval and total price,
	// re-running the conflict check (excluding the reservation itself) in the
	// same transaction; returns ErrDatesUnavailable on overlap.
	UpdateDatesIfAvailable(ctx context.Context, id string, start, end time.Time, totalPrice float64) error
	// HasConflict reports whether a blocking-status reservation for the boat
	// overlaps [start, end]. excludeID, when non-empty, omits that
	// reservation from the check.
	HasConflict(boatID string, start, end time.Time, excludeID string) (bool, error)
	// GetBookedRanges lists the intervals of blocking-status reservations
	// for a boat.
	GetBookedRanges(boatID string) ([]models.DateRange, error)
	// UpdateStatus sets a reservation's status.
	UpdateStatus(id, status string) error
	// Delete removes a reservation document by its ID.
	Delete(id string) error
	// HasCompleted reports whether the user has at least one completed
	// reservation for the boat.
	HasCompleted(userID, boatID string) (bool, error)
	// TimeOutStalePending bulk-transitions pending reservations created at or
	// before the cutoff to timed_out and returns the number modified.
	TimeOutStalePending(cutoff time.Time) (int64, error)
	// CountByBoat aggregates reservation counts per boat, descending.
	CountByBoat(limit int) ([]models.BoatReservationCount, error)
}
