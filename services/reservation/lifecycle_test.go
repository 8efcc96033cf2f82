// File: services/reservation/lifecycle_test.go
package reservation

import (
	"context"
	"net/http"
	"testing"
	"time"

	"boatify/models"
)

func createPending(t *testing.T, svc *DefaultReservationService, userID string, startOffset int) *models.Reservation {
	t.Helper()
	res, err := svc.Create(context.Background(), userID, models.ReservationInput{
		BoatID:    "boat-1",
		StartDate: futureDate(startOffset),
		EndDate:   futureDate(startOffset + 5),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return res
}

func TestCancel(t *testing.T) {
	svc, repo := newTestService(testBoat())
	owner := models.Actor{UserID: "user-1", Role: models.RoleUser}

	res := createPending(t, svc, "user-1", 10)
	if err := svc.Cancel(owner, res.ID); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	got, _ := repo.GetByID(res.ID)
	if got.Status != models.ReservationCancelled {
		t.Errorf("expected cancelled, got %q", got.Status)
	}

	// A cancelled reservation cannot be cancelled again.
	err := svc.Cancel(owner, res.ID)
	assertServiceError(t, err, http.StatusBadRequest)

	// Approved reservations can still be cancelled.
	res2 := createPending(t, svc, "user-1", 20)
	if err := repo.UpdateStatus(res2.ID, models.ReservationApproved); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if err := svc.Cancel(owner, res2.ID); err != nil {
		t.Fatalf("Cancel of approved reservation failed: %v", err)
	}

	// Strangers cannot cancel.
	res3 := createPending(t, svc, "user-1", 30)
	err = svc.Cancel(models.Actor{UserID: "user-2", Role: models.RoleUser}, res3.ID)
	assertServiceError(t, err, http.StatusForbidden)
}

func TestMarkPaid(t *testing.T) {
	svc, repo := newTestService(testBoat())
	owner := models.Actor{UserID: "user-1", Role: models.RoleUser}

	res := createPending(t, svc, "user-1", 10)
	if err := svc.MarkPaid(owner, res.ID); err != nil {
		t.Fatalf("MarkPaid failed: %v", err)
	}
	got, _ := repo.GetByID(res.ID)
	if got.Status != models.ReservationApproved {
		t.Errorf("expected approved, got %q", got.Status)
	}

	// Marking an already approved reservation again is rejected.
	err := svc.MarkPaid(owner, res.ID)
	assertServiceError(t, err, http.StatusBadRequest)
}

func TestApprovePayment(t *testing.T) {
	svc, repo := newTestService(testBoat())

	res := createPending(t, svc, "user-1", 10)
	if err := svc.ApprovePayment(res.ID); err != nil {
		t.Fatalf("ApprovePayment failed: %v", err)
	}
	got, _ := repo.GetByID(res.ID)
	if got.Status != models.ReservationApproved {
		t.Errorf("expected approved, got %q", got.Status)
	}

	// A duplicate webhook delivery is a no-op, not an error.
	if err := svc.ApprovePayment(res.ID); err != nil {
		t.Errorf("duplicate ApprovePayment should be ignored: %v", err)
	}

	err := svc.ApprovePayment("no-such-reservation")
	assertServiceError(t, err, http.StatusNotFound)
}

func TestSetStatus(t *testing.T) {
	svc, repo := newTestService(testBoat())

	res := createPending(t, svc, "user-1", 10)
	if err := svc.SetStatus(res.ID, models.ReservationActive); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	got, _ := repo.GetByID(res.ID)
	if got.Status != models.ReservationActive {
		t.Errorf("expected active, got %q", got.Status)
	}

	err := svc.SetStatus(res.ID, "bogus")
	assertServiceError(t, err, http.StatusBadRequest)
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService(testBoat())

	res := createPending(t, svc, "user-1", 10)

	// Non-terminal reservations cannot be deleted.
	err := svc.Delete(res.ID)
	assertServiceError(t, err, http.StatusBadRequest)

	if err := repo.UpdateStatus(res.ID, models.ReservationCompleted); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if err := svc.Delete(res.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got, _ := repo.GetByID(res.ID); got != nil {
		t.Error("reservation still present after delete")
	}
}

func TestSweepStalePending(t *testing.T) {
	svc, repo := newTestService(testBoat())

	fresh := createPending(t, svc, "user-1", 10)
	stale := createPending(t, svc, "user-2", 20)
	approvedStale := createPending(t, svc, "user-3", 30)
	if err := repo.UpdateStatus(approvedStale.ID, models.ReservationApproved); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	// Age the stale ones past the three-day threshold.
	repo.reservations[stale.ID].CreatedAt = time.Now().AddDate(0, 0, -5)
	repo.reservations[approvedStale.ID].CreatedAt = time.Now().AddDate(0, 0, -5)

	count, err := svc.SweepStalePending()
	if err != nil {
		t.Fatalf("SweepStalePending failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 reservation swept, got %d", count)
	}

	if got, _ := repo.GetByID(stale.ID); got.Status != models.ReservationTimedOut {
		t.Errorf("stale pending should be timed out, got %q", got.Status)
	}
	if got, _ := repo.GetByID(fresh.ID); got.Status != models.ReservationPending {
		t.Errorf("fresh pending should be untouched, got %q", got.Status)
	}
	if got, _ := repo.GetByID(approvedStale.ID); got.Status != models.ReservationApproved {
		t.Errorf("approved reservation should be untouched, got %q", got.Status)
	}

	// Sweeping again finds nothing new.
	count, err = svc.SweepStalePending()
	if err != nil {
		t.Fatalf("second SweepStalePending failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected idempotent sweep, got %d", count)
	}
}
