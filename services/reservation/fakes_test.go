// File: services/reservation/fakes_test.go
package reservation

import (
	"context"
	"sort"
	"time"

	reservationRepo "boatify/database/repository/reservation"
	"boatify/models"
)

// fakeReservationRepo is an in-memory ReservationRepository mirroring the
// Mongo implementation's conflict semantics.
type fakeReservationRepo struct {
	reservations map[string]*models.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: make(map[string]*models.Reservation)}
}

func (f *fakeReservationRepo) GetByID(id string) (*models.Reservation, error) {
	res, ok := f.reservations[id]
	if !ok {
		return nil, nil
	}
	cp := *res
	return &cp, nil
}

func (f *fakeReservationRepo) GetByUser(userID string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (f *fakeReservationRepo) GetAll() ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.reservations {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeReservationRepo) hasConflict(boatID string, start, end time.Time, excludeID string) bool {
	for _, r := range f.reservations {
		if r.BoatID != boatID || r.ID == excludeID {
			continue
		}
		blocking := false
		for _, s := range models.BlockingStatuses {
			if r.Status == s {
				blocking = true
				break
			}
		}
		if blocking && Overlaps(r.StartDate, r.EndDate, start, end) {
			return true
		}
	}
	return false
}

func (f *fakeReservationRepo) CreateIfAvailable(_ context.Context, res *models.Reservation) error {
	if f.hasConflict(res.BoatID, res.StartDate, res.EndDate, "") {
		return reservationRepo.ErrDatesUnavailable
	}
	cp := *res
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	f.reservations[cp.ID] = &cp
	return nil
}

func (f *fakeReservationRepo) UpdateDatesIfAvailable(_ context.Context, id string, start, end time.Time, totalPrice float64) error {
	res, ok := f.reservations[id]
	if !ok {
		return nil
	}
	if f.hasConflict(res.BoatID, start, end, id) {
		return reservationRepo.ErrDatesUnavailable
	}
	res.StartDate = start
	res.EndDate = end
	res.TotalPrice = totalPrice
	res.UpdatedAt = time.Now()
	return nil
}

func (f *fakeReservationRepo) HasConflict(boatID string, start, end time.Time, excludeID string) (bool, error) {
	return f.hasConflict(boatID, start, end, excludeID), nil
}

func (f *fakeReservationRepo) GetBookedRanges(boatID string) ([]models.DateRange, error) {
	var out []models.DateRange
	for _, r := range f.reservations {
		if r.BoatID != boatID {
			continue
		}
		for _, s := range models.BlockingStatuses {
			if r.Status == s {
				out = append(out, models.DateRange{StartDate: r.StartDate, EndDate: r.EndDate})
				break
			}
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) UpdateStatus(id, status string) error {
	if res, ok := f.reservations[id]; ok {
		res.Status = status
		res.UpdatedAt = time.Now()
	}
	return nil
}

func (f *fakeReservationRepo) Delete(id string) error {
	delete(f.reservations, id)
	return nil
}

func (f *fakeReservationRepo) HasCompleted(userID, boatID string) (bool, error) {
	for _, r := range f.reservations {
		if r.UserID == userID && r.BoatID == boatID && r.Status == models.ReservationCompleted {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReservationRepo) TimeOutStalePending(cutoff time.Time) (int64, error) {
	var count int64
	for _, r := range f.reservations {
		if r.Status == models.ReservationPending && !r.CreatedAt.After(cutoff) {
			r.Status = models.ReservationTimedOut
			count++
		}
	}
	return count, nil
}

func (f *fakeReservationRepo) CountByBoat(limit int) ([]models.BoatReservationCount, error) {
	counts := make(map[string]int64)
	for _, r := range f.reservations {
		counts[r.BoatID]++
	}
	var out []models.BoatReservationCount
	for boatID, n := range counts {
		out = append(out, models.BoatReservationCount{BoatID: boatID, Reservations: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Reservations > out[j].Reservations })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeBoatRepo is an in-memory BoatRepository with just enough behavior for
// the reservation tests.
type fakeBoatRepo struct {
	boats map[string]*models.Boat
}

func newFakeBoatRepo(boats ...*models.Boat) *fakeBoatRepo {
	f := &fakeBoatRepo{boats: make(map[string]*models.Boat)}
	for _, b := range boats {
		f.boats[b.ID] = b
	}
	return f
}

func (f *fakeBoatRepo) GetByID(id string) (*models.Boat, error) {
	b, ok := f.boats[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBoatRepo) GetByName(name string) (*models.Boat, error) {
	for _, b := range f.boats {
		if b.Name == name {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBoatRepo) GetAll() ([]models.Boat, error) {
	var out []models.Boat
	for _, b := range f.boats {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBoatRepo) GetPublished() ([]models.Boat, error) {
	var out []models.Boat
	for _, b := range f.boats {
		if b.Status == models.BoatStatusPublished {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBoatRepo) Create(b *models.Boat) error {
	cp := *b
	f.boats[cp.ID] = &cp
	return nil
}

func (f *fakeBoatRepo) Update(b *models.Boat) error {
	cp := *b
	f.boats[cp.ID] = &cp
	return nil
}

func (f *fakeBoatRepo) Delete(id string) error {
	delete(f.boats, id)
	return nil
}

func (f *fakeBoatRepo) SetRating(id string, rating float64) error {
	if b, ok := f.boats[id]; ok {
		b.Rating = rating
	}
	return nil
}

func (f *fakeBoatRepo) Search(filter models.BoatSearchFilter) ([]models.Boat, int64, error) {
	published, _ := f.GetPublished()
	return published, int64(len(published)), nil
}

func (f *fakeBoatRepo) FilterLimits() (*models.BoatFilterLimits, error) {
	return &models.BoatFilterLimits{}, nil
}
