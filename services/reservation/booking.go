// File: services/reservation/booking.go
package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	reservationRepo "boatify/database/repository/reservation"
	"boatify/models"
	"boatify/services/svcerr"
	"boatify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// validateDates enforces the booking date rules: no start in the past, end
// strictly after start, duration within the configured bounds.
func (s *DefaultReservationService) validateDates(start, end time.Time) error {
	if start.Before(startOfToday(time.Now())) {
		return svcerr.Validation("Cannot reserve in the past")
	}
	if !end.After(start) {
		return svcerr.Validation("End date must be after start date")
	}
	days := Days(start, end)
	if days < s.MinDays {
		return svcerr.Validation(fmt.Sprintf("Reservation must be at least %d days long", s.MinDays))
	}
	if days > s.MaxDays {
		return svcerr.Validation(fmt.Sprintf("Reservation cannot exceed %d days", s.MaxDays))
	}
	return nil
}

// Create books a boat for the user. The conflict check runs inside the
// repository transaction together with the insert.
func (s *DefaultReservationService) Create(ctx context.Context, userID string, input models.ReservationInput) (*models.Reservation, error) {
	boat, err := s.BoatRepo.GetByID(input.BoatID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boat: %w", err)
	}
	if boat == nil {
		return nil, svcerr.NotFound("Boat not found")
	}

	if err := s.validateDates(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	res := &models.Reservation{
		ID:         uuid.New().String(),
		UserID:     userID,
		BoatID:     boat.ID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Status:     models.ReservationPending,
		TotalPrice: float64(Days(input.StartDate, input.EndDate)) * boat.PricePerDay,
		Note:       input.Note,
	}

	if err := s.Repo.CreateIfAvailable(ctx, res); err != nil {
		if errors.Is(err, reservationRepo.ErrDatesUnavailable) {
			return nil, svcerr.Conflict("Selected dates are not available")
		}
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	utils.GetLogger().Info("reservation created",
		zap.String("reservation", res.ID),
		zap.String("boat", boat.ID),
		zap.String("user", userID),
	)
	return res, nil
}

// GetByID returns a reservation to its owner or an admin.
func (s *DefaultReservationService) GetByID(actor models.Actor, id string) (*models.Reservation, error) {
	res, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation: %w", err)
	}
	if res == nil {
		return nil, svcerr.NotFound("Reservation not found")
	}
	if res.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, svcerr.Forbidden("Not authorized to view this reservation")
	}
	return res, nil
}

// GetMine returns the user's reservations sorted by start date.
func (s *DefaultReservationService) GetMine(userID string) ([]models.Reservation, error) {
	return s.Repo.GetByUser(userID)
}

// GetAll returns every reservation for the admin listing.
func (s *DefaultReservationService) GetAll() ([]models.Reservation, error) {
	return s.Repo.GetAll()
}

// UpdateDates moves a pending reservation's interval. Only the owner or an
// admin may edit, only while pending, and the new interval passes the same
// validation as creation with the reservation itself excluded from the
// conflict check. The total price is recomputed from the boat's current
// per-day price.
func (s *DefaultReservationService) UpdateDates(ctx context.Context, actor models.Actor, id string, input models.ReservationDatesInput) (*models.Reservation, error) {
	res, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation: %w", err)
	}
	if res == nil {
		return nil, svcerr.NotFound("Reservation not found")
	}
	if res.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, svcerr.Forbidden("Not authorized")
	}
	if res.Status != models.ReservationPending {
		return nil, svcerr.Validation("Only pending reservations can be updated")
	}

	start, end := res.StartDate, res.EndDate
	if input.StartDate != nil {
		start = *input.StartDate
	}
	if input.EndDate != nil {
		end = *input.EndDate
	}
	if err := s.validateDates(start, end); err != nil {
		return nil, err
	}

	boat, err := s.BoatRepo.GetByID(res.BoatID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boat: %w", err)
	}
	if boat == nil {
		return nil, svcerr.NotFound("Boat not found")
	}
	totalPrice := float64(Days(start, end)) * boat.PricePerDay

	if err := s.Repo.UpdateDatesIfAvailable(ctx, id, start, end, totalPrice); err != nil {
		if errors.Is(err, reservationRepo.ErrDatesUnavailable) {
			return nil, svcerr.Conflict("Selected dates are not available")
		}
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	res.StartDate = start
	res.EndDate = end
	res.TotalPrice = totalPrice
	return res, nil
}
