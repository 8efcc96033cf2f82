// File: services/boat/boat.go
package boat

import (
	"fmt"
	"math"
	"time"

	boatRepo "boatify/database/repository/boat"
	reservationRepo "boatify/database/repository/reservation"
	"boatify/models"
	"boatify/services/svcerr"
	"boatify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultSearchPage  = 1
	defaultSearchLimit = 8
)

// BoatService manages the boat catalog.
type BoatService interface {
	CreateBoat(input models.BoatInput) (*models.Boat, error)
	UpdateBoat(id string, input models.BoatInput) (*models.Boat, error)
	DeleteBoat(id string) error
	GetBoatByID(id string) (*models.Boat, error)
	GetAllBoats() ([]models.Boat, error)
	GetPublishedBoats() ([]models.Boat, error)
	// SearchBoats applies the catalog filters in the database, then prunes
	// boats unavailable over the requested date range.
	SearchBoats(filter models.BoatSearchFilter) (*models.BoatSearchResult, error)
	GetBookedDates(boatID string) ([]models.DateRange, error)
	GetFilterLimits() (*models.BoatFilterLimits, error)
}

// DefaultBoatService is the production BoatService.
type DefaultBoatService struct {
	Repo            boatRepo.BoatRepository
	ReservationRepo reservationRepo.ReservationRepository
}

func (s *DefaultBoatService) CreateBoat(input models.BoatInput) (*models.Boat, error) {
	if input.Name == "" {
		return nil, svcerr.Validation("Boat name is required")
	}
	if input.Type == "" {
		return nil, svcerr.Validation("Boat type is required")
	}
	if input.PricePerDay == nil || *input.PricePerDay <= 0 {
		return nil, svcerr.Validation("Price per day must be greater than zero")
	}
	if input.Capacity == nil || *input.Capacity <= 0 {
		return nil, svcerr.Validation("Capacity must be greater than zero")
	}

	existing, err := s.Repo.GetByName(input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check boat name: %w", err)
	}
	if existing != nil {
		return nil, svcerr.Conflict("Boat already exists")
	}

	now := time.Now()
	boat := &models.Boat{
		ID:          uuid.New().String(),
		Type:        input.Type,
		Name:        input.Name,
		Description: input.Description,
		PricePerDay: *input.PricePerDay,
		Capacity:    *input.Capacity,
		Status:      models.BoatStatusDraft,
		Location:    input.Location,
		Images:      input.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.WithCaptain != nil {
		boat.WithCaptain = *input.WithCaptain
	}
	if input.Status != "" {
		boat.Status = input.Status
	}
	if input.Year != nil {
		boat.Year = *input.Year
	}
	if input.Length != nil {
		boat.Length = *input.Length
	}
	if input.Cabins != nil {
		boat.Cabins = *input.Cabins
	}

	if err := s.Repo.Create(boat); err != nil {
		return nil, fmt.Errorf("failed to create boat: %w", err)
	}
	utils.GetLogger().Info("boat created",
		zap.String("boat", boat.ID),
		zap.String("name", boat.Name),
	)
	return boat, nil
}

func (s *DefaultBoatService) UpdateBoat(id string, input models.BoatInput) (*models.Boat, error) {
	boat, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boat: %w", err)
	}
	if boat == nil {
		return nil, svcerr.NotFound("Boat not found")
	}

	if input.Name != "" && input.Name != boat.Name {
		existing, err := s.Repo.GetByName(input.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check boat name: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, svcerr.Conflict("Boat already exists")
		}
		boat.Name = input.Name
	}
	if input.Type != "" {
		boat.Type = input.Type
	}
	if input.Description != "" {
		boat.Description = input.Description
	}
	if input.PricePerDay != nil {
		boat.PricePerDay = *input.PricePerDay
	}
	if input.Capacity != nil {
		boat.Capacity = *input.Capacity
	}
	if input.WithCaptain != nil {
		boat.WithCaptain = *input.WithCaptain
	}
	if input.Status != "" {
		boat.Status = input.Status
	}
	if input.Location != "" {
		boat.Location = input.Location
	}
	if input.Year != nil {
		boat.Year = *input.Year
	}
	if input.Length != nil {
		boat.Length = *input.Length
	}
	if input.Cabins != nil {
		boat.Cabins = *input.Cabins
	}
	if input.Images != nil {
		boat.Images = input.Images
	}
	boat.UpdatedAt = time.Now()

	if err := s.Repo.Update(boat); err != nil {
		return nil, fmt.Errorf("failed to update boat: %w", err)
	}
	return boat, nil
}

func (s *DefaultBoatService) DeleteBoat(id string) error {
	boat, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch boat: %w", err)
	}
	if boat == nil {
		return svcerr.NotFound("Boat not found")
	}
	return s.Repo.Delete(id)
}

func (s *DefaultBoatService) GetBoatByID(id string) (*models.Boat, error) {
	boat, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boat: %w", err)
	}
	if boat == nil {
		return nil, svcerr.NotFound("Boat not found")
	}
	return boat, nil
}

func (s *DefaultBoatService) GetAllBoats() ([]models.Boat, error) {
	return s.Repo.GetAll()
}

func (s *DefaultBoatService) GetPublishedBoats() ([]models.Boat, error) {
	return s.Repo.GetPublished()
}

func (s *DefaultBoatService) SearchBoats(filter models.BoatSearchFilter) (*models.BoatSearchResult, error) {
	if filter.Page < 1 {
		filter.Page = defaultSearchPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultSearchLimit
	}

	// Date availability cannot be expressed as a boat-collection filter, so
	// when dates are present we page in memory after pruning conflicts.
	datesRequested := filter.StartDate != nil && filter.EndDate != nil

	dbFilter := filter
	if datesRequested {
		dbFilter.Page = 1
		dbFilter.Limit = 0
	}

	boats, total, err := s.Repo.Search(dbFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to search boats: %w", err)
	}

	if datesRequested {
		available := make([]models.Boat, 0, len(boats))
		for _, b := range boats {
			conflict, err := s.ReservationRepo.HasConflict(b.ID, *filter.StartDate, *filter.EndDate, "")
			if err != nil {
				return nil, fmt.Errorf("failed to check availability: %w", err)
			}
			if !conflict {
				available = append(available, b)
			}
		}
		total = int64(len(available))
		offset := (filter.Page - 1) * filter.Limit
		if offset > len(available) {
			offset = len(available)
		}
		end := offset + filter.Limit
		if end > len(available) {
			end = len(available)
		}
		boats = available[offset:end]
	}

	pages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	return &models.BoatSearchResult{
		Boats: boats,
		Total: total,
		Page:  filter.Page,
		Pages: pages,
	}, nil
}

func (s *DefaultBoatService) GetBookedDates(boatID string) ([]models.DateRange, error) {
	boat, err := s.Repo.GetByID(boatID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boat: %w", err)
	}
	if boat == nil {
		return nil, svcerr.NotFound("Boat not found")
	}
	return s.ReservationRepo.GetBookedRanges(boatID)
}

func (s *DefaultBoatService) GetFilterLimits() (*models.BoatFilterLimits, error) {
	return s.Repo.FilterLimits()
}
