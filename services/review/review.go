// File: services/review/review.go
package review

import (
	"fmt"
	"time"

	boatRepo "boatify/database/repository/boat"
	reservationRepo "boatify/database/repository/reservation"
	reviewRepo "boatify/database/repository/review"
	"boatify/models"
	"boatify/services/svcerr"
	"boatify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewService manages boat reviews and keeps the boats' aggregate
// ratings in sync with them.
type ReviewService interface {
	// Submit creates the actor's review for a boat, or replaces it if one
	// already exists. It returns the review, the boat with its recalculated
	// rating, and whether a new review was created rather than updated.
	Submit(userID, boatID string, input models.ReviewInput) (*models.Review, *models.Boat, bool, error)
	GetForBoat(boatID string) ([]models.Review, error)
	AverageForBoat(boatID string) (float64, error)
	GetAll() ([]models.Review, error)
	Delete(actor models.Actor, id string) error
}

// DefaultReviewService is the production ReviewService.
type DefaultReviewService struct {
	Repo            reviewRepo.ReviewRepository
	BoatRepo        boatRepo.BoatRepository
	ReservationRepo reservationRepo.ReservationRepository
}

func (s *DefaultReviewService) Submit(userID, boatID string, input models.ReviewInput) (*models.Review, *models.Boat, bool, error) {
	boat, err := s.BoatRepo.GetByID(boatID)
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to fetch boat: %w", err)
	}
	if boat == nil {
		return nil, nil, false, svcerr.NotFound("Boat not found")
	}

	completed, err := s.ReservationRepo.HasCompleted(userID, boatID)
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to check reservation history: %w", err)
	}
	if !completed {
		return nil, nil, false, svcerr.Forbidden("You can only review boats you have rented and completed")
	}

	existing, err := s.Repo.GetByUserAndBoat(userID, boatID)
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to fetch review: %w", err)
	}

	now := time.Now()
	created := existing == nil
	var review *models.Review
	if existing != nil {
		existing.Rating = input.Rating
		existing.Comment = input.Comment
		existing.UpdatedAt = now
		if err := s.Repo.Update(existing); err != nil {
			return nil, nil, false, fmt.Errorf("failed to update review: %w", err)
		}
		review = existing
	} else {
		review = &models.Review{
			ID:        uuid.New().String(),
			UserID:    userID,
			BoatID:    boatID,
			Rating:    input.Rating,
			Comment:   input.Comment,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.Repo.Create(review); err != nil {
			return nil, nil, false, fmt.Errorf("failed to create review: %w", err)
		}
	}

	updatedBoat, err := s.recalcRating(boatID)
	if err != nil {
		return nil, nil, false, err
	}

	utils.GetLogger().Info("review submitted",
		zap.String("review", review.ID),
		zap.String("boat", boatID),
		zap.Int("rating", review.Rating),
	)
	return review, updatedBoat, created, nil
}

func (s *DefaultReviewService) GetForBoat(boatID string) ([]models.Review, error) {
	return s.Repo.GetByBoat(boatID)
}

func (s *DefaultReviewService) AverageForBoat(boatID string) (float64, error) {
	return s.Repo.AverageForBoat(boatID)
}

func (s *DefaultReviewService) GetAll() ([]models.Review, error) {
	return s.Repo.GetAll()
}

func (s *DefaultReviewService) Delete(actor models.Actor, id string) error {
	review, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch review: %w", err)
	}
	if review == nil {
		return svcerr.NotFound("Review not found")
	}
	if review.UserID != actor.UserID && !actor.IsAdmin() {
		return svcerr.Forbidden("Not authorized to delete this review")
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if _, err := s.recalcRating(review.BoatID); err != nil {
		return err
	}
	return nil
}

// recalcRating recomputes a boat's average rating from its remaining
// reviews and persists the exact mean. Rounding is left to clients.
func (s *DefaultReviewService) recalcRating(boatID string) (*models.Boat, error) {
	avg, err := s.Repo.AverageForBoat(boatID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute average rating: %w", err)
	}
	if err := s.BoatRepo.SetRating(boatID, avg); err != nil {
		return nil, fmt.Errorf("failed to update boat rating: %w", err)
	}
	boat, err := s.BoatRepo.GetByID(boatID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boat: %w", err)
	}
	return boat, nil
}
