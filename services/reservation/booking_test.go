// File: services/reservation/booking_test.go
package reservation

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"boatify/models"
	"boatify/services/svcerr"
)

func newTestService(boats ...*models.Boat) (*DefaultReservationService, *fakeReservationRepo) {
	repo := newFakeReservationRepo()
	svc := &DefaultReservationService{
		Repo:                repo,
		BoatRepo:            newFakeBoatRepo(boats...),
		MinDays:             3,
		MaxDays:             30,
		AutoRejectAfterDays: 3,
	}
	return svc, repo
}

func testBoat() *models.Boat {
	return &models.Boat{
		ID:          "boat-1",
		Type:        models.BoatTypeYacht,
		Name:        "Vėjas",
		PricePerDay: 150,
		Capacity:    8,
		Status:      models.BoatStatusPublished,
	}
}

func futureDate(days int) time.Time {
	return time.Now().AddDate(0, 0, days).Truncate(24 * time.Hour).Add(12 * time.Hour)
}

func assertServiceError(t *testing.T, err error, wantCode int) {
	t.Helper()
	var svcErr *svcerr.Error
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected service error, got %v", err)
	}
	if svcErr.Code != wantCode {
		t.Fatalf("expected status %d, got %d (%s)", wantCode, svcErr.Code, svcErr.Message)
	}
}

func TestCreateReservation(t *testing.T) {
	svc, _ := newTestService(testBoat())

	input := models.ReservationInput{
		BoatID:    "boat-1",
		StartDate: futureDate(10),
		EndDate:   futureDate(15),
	}
	res, err := svc.Create(context.Background(), "user-1", input)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if res.Status != models.ReservationPending {
		t.Errorf("expected pending status, got %q", res.Status)
	}
	if want := 5 * 150.0; res.TotalPrice != want {
		t.Errorf("expected total price %.0f, got %.0f", want, res.TotalPrice)
	}
}

func TestCreateReservationUnknownBoat(t *testing.T) {
	svc, _ := newTestService(testBoat())

	_, err := svc.Create(context.Background(), "user-1", models.ReservationInput{
		BoatID:    "no-such-boat",
		StartDate: futureDate(10),
		EndDate:   futureDate(15),
	})
	assertServiceError(t, err, http.StatusNotFound)
}

func TestCreateReservationDateRules(t *testing.T) {
	svc, _ := newTestService(testBoat())
	ctx := context.Background()

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"start in the past", futureDate(-2), futureDate(3)},
		{"end before start", futureDate(10), futureDate(5)},
		{"too short", futureDate(10), futureDate(11)},
		{"too long", futureDate(10), futureDate(45)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, "user-1", models.ReservationInput{
				BoatID:    "boat-1",
				StartDate: tt.start,
				EndDate:   tt.end,
			})
			assertServiceError(t, err, http.StatusBadRequest)
		})
	}
}

func TestCreateReservationConflict(t *testing.T) {
	svc, _ := newTestService(testBoat())
	ctx := context.Background()

	first := models.ReservationInput{
		BoatID:    "boat-1",
		StartDate: futureDate(10),
		EndDate:   futureDate(15),
	}
	if _, err := svc.Create(ctx, "user-1", first); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	// Overlapping interval from another user is rejected.
	_, err := svc.Create(ctx, "user-2", models.ReservationInput{
		BoatID:    "boat-1",
		StartDate: futureDate(14),
		EndDate:   futureDate(18),
	})
	assertServiceError(t, err, http.StatusBadRequest)

	// A disjoint interval is fine.
	if _, err := svc.Create(ctx, "user-2", models.ReservationInput{
		BoatID:    "boat-1",
		StartDate: futureDate(20),
		EndDate:   futureDate(25),
	}); err != nil {
		t.Fatalf("disjoint Create failed: %v", err)
	}
}

func TestCreateReservationIgnoresResolvedConflicts(t *testing.T) {
	svc, repo := newTestService(testBoat())
	ctx := context.Background()

	res, err := svc.Create(ctx, "user-1", models.ReservationInput{
		BoatID:    "boat-1",
		StartDate: futureDate(10),
		EndDate:   futureDate(15),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.UpdateStatus(res.ID, models.ReservationCancelled); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	// A cancelled reservation no longer blocks the dates.
	if _, err := svc.Create(ctx, "user-2", models.ReservationInput{
		BoatID:    "boat-1",
		StartDate: futureDate(10),
		EndDate:   futureDate(15),
	}); err != nil {
		t.Fatalf("Create over cancelled reservation failed: %v", err)
	}
}

func TestGetByIDAuthorization(t *testing.T) {
	svc, _ := newTestService(testBoat())
	ctx := context.Background()

	res, err := svc.Create(ctx, "user-1", models.ReservationInput{
		BoatID:    "boat-1",
		StartDate: futureDate(10),
		EndDate:   futureDate(15),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.GetByID(models.Actor{UserID: "user-1", Role: models.RoleUser}, res.ID); err != nil {
		t.Errorf("owner should see own reservation: %v", err)
	}
	if _, err := svc.GetByID(models.Actor{UserID: "admin-1", Role: models.RoleAdmin}, res.ID); err != nil {
		t.Errorf("admin should see any reservation: %v", err)
	}
	_, err = svc.GetByID(models.Actor{UserID: "user-2", Role: models.RoleUser}, res.ID)
	assertServiceError(t, err, http.StatusForbidden)
}

func TestUpdateDates(t *testing.T) {
	svc, repo := newTestService(testBoat())
	ctx := context.Background()
	owner := models.Actor{UserID: "user-1", Role: models.RoleUser}

	res, err := svc.Create(ctx, "user-1", models.ReservationInput{
		BoatID:    "boat-1",
		StartDate: futureDate(10),
		EndDate:   futureDate(15),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	newStart, newEnd := futureDate(20), futureDate(26)
	updated, err := svc.UpdateDates(ctx, owner, res.ID, models.ReservationDatesInput{
		StartDate: &newStart,
		EndDate:   &newEnd,
	})
	if err != nil {
		t.Fatalf("UpdateDates failed: %v", err)
	}
	if want := 6 * 150.0; updated.TotalPrice != want {
		t.Errorf("expected repriced total %.0f, got %.0f", want, updated.TotalPrice)
	}

	// Only pending reservations can be edited.
	if err := repo.UpdateStatus(res.ID, models.ReservationApproved); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	_, err = svc.UpdateDates(ctx, owner, res.ID, models.ReservationDatesInput{StartDate: &newStart, EndDate: &newEnd})
	assertServiceError(t, err, http.StatusBadRequest)
}

func TestUpdateDatesConflict(t *testing.T) {
	svc, _ := newTestService(testBoat())
	ctx := context.Background()

	first, err := svc.Create(ctx, "user-1", models.ReservationInput{
		BoatID:    "boat-1",
		StartDate: futureDate(10),
		EndDate:   futureDate(15),
	})
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	if _, err := svc.Create(ctx, "user-2", models.ReservationInput{
		BoatID:    "boat-1",
		StartDate: futureDate(20),
		EndDate:   futureDate(25),
	}); err != nil {
		t.Fatalf("second Create failed: %v", err)
	}

	// Moving onto the other booking is rejected.
	newStart, newEnd := futureDate(22), futureDate(27)
	_, err = svc.UpdateDates(ctx, models.Actor{UserID: "user-1", Role: models.RoleUser}, first.ID,
		models.ReservationDatesInput{StartDate: &newStart, EndDate: &newEnd})
	assertServiceError(t, err, http.StatusBadRequest)

	// Sliding within the reservation's own interval is allowed; it does not
	// conflict with itself.
	sameStart, sameEnd := futureDate(11), futureDate(15)
	if _, err := svc.UpdateDates(ctx, models.Actor{UserID: "user-1", Role: models.RoleUser}, first.ID,
		models.ReservationDatesInput{StartDate: &sameStart, EndDate: &sameEnd}); err != nil {
		t.Fatalf("self-overlapping update failed: %v", err)
	}
}
