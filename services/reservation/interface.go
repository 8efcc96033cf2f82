package reservation

import (
	"context"

	boatRepo "boatify/database/repository/boat"
	reservationRepo "boatify/database/repository/reservation"
	"boatify/models"
)

// ReservationService drives the reservation lifecycle: creation with
// availability checks, owner edits, cancellation, admin transitions, the
// payment callback, and the stale-pending sweep.
type ReservationService interface {
	// Create books a boat for the user; the new reservation starts pending.
	Create(ctx context.Context, userID string, input models.ReservationInput) (*models.Reservation, error)
	// GetByID returns a reservation to its owner or an admin.
	GetByID(actor models.Actor, id string) (*models.Reservation, error)
	// GetMine returns the user's reservations sorted by start date.
	GetMine(userID string) ([]models.Reservation, error)
	// GetAll returns every reservation (admin listing).
	GetAll() ([]models.Reservation, error)
	// UpdateDates moves a pending reservation's interval and reprices it.
	UpdateDates(ctx context.Context, actor models.Actor, id string, input models.ReservationDatesInput) (*models.Reservation, error)
	// Cancel transitions a pending or approved reservation to cancelled.
	Cancel(actor models.Actor, id string) error
	// MarkPaid is the owner-facing payment-success callback: pending -> approved.
	MarkPaid(actor models.Actor, id string) error
	// ApprovePayment is the webhook-facing payment confirmation for a
	// reservation identified out-of-band; pending -> approved.
	ApprovePayment(id string) error
	// SetStatus applies an admin transition to any recognized status.
	SetStatus(id, status string) error
	// Delete removes a reservation that is already in a terminal status.
	Delete(id string) error
	// SweepStalePending times out pending reservations older than the
	// configured threshold and returns the number transitioned.
	SweepStalePending() (int64, error)
	// TopReservedBoats aggregates reservation counts per boat for reporting.
	TopReservedBoats() ([]models.BoatReservationCount, error)
}

// DefaultReservationService is the production implementation.
type DefaultReservationService struct {
	Repo     reservationRepo.ReservationRepository
	BoatRepo boatRepo.BoatRepository

	// Duration bounds for new bookings, in days.
	MinDays int
	MaxDays int
	// Age at which a pending reservation is timed out by the sweep, in days.
	AutoRejectAfterDays int
}
