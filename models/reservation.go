package models

import "time"

// Reservation statuses. A pending reservation awaits admin approval or
// payment; the sweep times out stale ones.
const (
	ReservationPending   = "pending"
	ReservationApproved  = "approved"
	ReservationRejected  = "rejected"
	ReservationActive    = "active"
	ReservationCompleted = "completed"
	ReservationCancelled = "cancelled"
	ReservationTimedOut  = "timed_out"
)

// ReservationStatuses is the recognized status vocabulary.
var ReservationStatuses = []string{
	ReservationPending,
	ReservationApproved,
	ReservationRejected,
	ReservationActive,
	ReservationCompleted,
	ReservationCancelled,
	ReservationTimedOut,
}

// BlockingStatuses are the statuses that make a reservation count against a
// boat's availability: not yet resolved and not cancelled or rejected.
var BlockingStatuses = []string{ReservationPending, ReservationApproved, ReservationActive}

// TerminalStatuses are the statuses from which no further transition exists.
// Only reservations in one of these may be hard-deleted.
var TerminalStatuses = []string{ReservationRejected, ReservationCompleted, ReservationCancelled, ReservationTimedOut}

// IsValidReservationStatus reports whether s is in the recognized vocabulary.
func IsValidReservationStatus(s string) bool {
	for _, v := range ReservationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsTerminalReservationStatus reports whether s is terminal.
func IsTerminalReservationStatus(s string) bool {
	for _, v := range TerminalStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Reservation represents a booking of one boat by one user over a closed
// date interval.
type Reservation struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"user_id" json:"userId"`
	BoatID     string    `bson:"boat_id" json:"boatId"`
	StartDate  time.Time `bson:"start_date" json:"startDate"`
	EndDate    time.Time `bson:"end_date" json:"endDate"`
	Status     string    `bson:"status" json:"status"`
	TotalPrice float64   `bson:"total_price" json:"totalPrice"`
	Note       string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

// ReservationInput is the payload for creating a reservation.
type ReservationInput struct {
	BoatID    string    `json:"boatId" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
	Note      string    `json:"note"`
}

// ReservationDatesInput is the payload for editing a pending reservation's
// dates. Absent fields keep their current value.
type ReservationDatesInput struct {
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// DateRange is a booked interval exposed by the availability endpoint.
type DateRange struct {
	StartDate time.Time `bson:"start_date" json:"startDate"`
	EndDate   time.Time `bson:"end_date" json:"endDate"`
}

// BoatReservationCount is one row of the top-reserved-boats report.
type BoatReservationCount struct {
	BoatID       string `bson:"_id" json:"boatId"`
	BoatName     string `bson:"boat_name" json:"boatName"`
	Reservations int64  `bson:"reservations" json:"reservations"`
}
