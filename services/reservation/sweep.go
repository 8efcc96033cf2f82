// File: services/reservation/sweep.go
package reservation

import (
	"time"

	"boatify/models"
	"boatify/utils"

	"go.uber.org/zap"
)

// SweepStalePending times out reservations that have sat in pending longer
// than the configured grace period. The operation is a single bulk update,
// so concurrent sweeps are harmless.
func (s *DefaultReservationService) SweepStalePending() (int64, error) {
	cutoff := time.Now().Add(-time.Duration(s.AutoRejectAfterDays) * 24 * time.Hour)
	count, err := s.Repo.TimeOutStalePending(cutoff)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		utils.GetLogger().Info("stale pending reservations timed out",
			zap.Int64("count", count),
			zap.Time("cutoff", cutoff),
			zap.String("status", models.ReservationTimedOut),
		)
	}
	return count, nil
}
