// File: services/reservation/lifecycle.go
package reservation

import (
	"fmt"

	"boatify/models"
	"boatify/services/svcerr"
	"boatify/utils"

	"go.uber.org/zap"
)

// Cancel transitions a pending or approved reservation to cancelled. The
// owner and admins may cancel; anyone else is rejected as unauthorized.
func (s *DefaultReservationService) Cancel(actor models.Actor, id string) error {
	res, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch reservation: %w", err)
	}
	if res == nil {
		return svcerr.NotFound("Reservation not found")
	}
	if res.UserID != actor.UserID && !actor.IsAdmin() {
		return svcerr.Forbidden("Not authorized")
	}
	if res.Status != models.ReservationPending && res.Status != models.ReservationApproved {
		return svcerr.Validation("Only pending or approved reservations can be cancelled")
	}
	return s.Repo.UpdateStatus(id, models.ReservationCancelled)
}

// MarkPaid is the owner-facing payment-success callback.
func (s *DefaultReservationService) MarkPaid(actor models.Actor, id string) error {
	res, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch reservation: %w", err)
	}
	if res == nil {
		return svcerr.NotFound("Reservation not found")
	}
	if res.UserID != actor.UserID && !actor.IsAdmin() {
		return svcerr.Forbidden("Not authorized")
	}
	if res.Status != models.ReservationPending {
		return svcerr.Validation("Only pending reservations can be marked as paid")
	}
	return s.Repo.UpdateStatus(id, models.ReservationApproved)
}

// ApprovePayment confirms payment for a reservation identified by the
// payment gateway. A reservation no longer pending is left untouched; the
// gateway may deliver the same event more than once.
func (s *DefaultReservationService) ApprovePayment(id string) error {
	res, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch reservation: %w", err)
	}
	if res == nil {
		return svcerr.NotFound("Reservation not found")
	}
	if res.Status != models.ReservationPending {
		utils.GetLogger().Info("payment confirmation for non-pending reservation ignored",
			zap.String("reservation", id),
			zap.String("status", res.Status),
		)
		return nil
	}
	return s.Repo.UpdateStatus(id, models.ReservationApproved)
}

// SetStatus applies an admin transition. Any recognized status is allowed;
// an unrecognized value is a validation failure.
func (s *DefaultReservationService) SetStatus(id, status string) error {
	if !models.IsValidReservationStatus(status) {
		return svcerr.Validation(fmt.Sprintf("Unknown reservation status %q", status))
	}
	res, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch reservation: %w", err)
	}
	if res == nil {
		return svcerr.NotFound("Reservation not found")
	}
	return s.Repo.UpdateStatus(id, status)
}

// Delete removes a reservation that has already reached a terminal status.
func (s *DefaultReservationService) Delete(id string) error {
	res, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch reservation: %w", err)
	}
	if res == nil {
		return svcerr.NotFound("Reservation not found")
	}
	if !models.IsTerminalReservationStatus(res.Status) {
		return svcerr.Validation("Only completed, cancelled, rejected or timed out reservations can be deleted")
	}
	return s.Repo.Delete(id)
}

// TopReservedBoats aggregates reservation counts per boat for reporting.
func (s *DefaultReservationService) TopReservedBoats() ([]models.BoatReservationCount, error) {
	return s.Repo.CountByBoat(10)
}
