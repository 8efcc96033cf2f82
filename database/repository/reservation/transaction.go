// File: database/repository/reservation/transaction.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"boatify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// withTransaction runs fn inside a Mongo session transaction.
func (r *MongoReservationRepo) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

// CreateIfAvailable inserts the reservation only if no blocking-status
// reservation overlaps its interval. Running the conflict check and the
// insert in one transaction closes the check-then-act window between two
// concurrent bookings for the same boat.
func (r *MongoReservationRepo) CreateIfAvailable(ctx context.Context, res *models.Reservation) error {
	now := time.Now()
	res.CreatedAt = now
	res.UpdatedAt = now

	err := r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		count, err := r.coll.CountDocuments(sc, overlapFilter(res.BoatID, res.StartDate, res.EndDate, ""))
		if err != nil {
			return fmt.Errorf("conflict check failed: %w", err)
		}
		if count > 0 {
			return ErrDatesUnavailable
		}
		if _, err := r.coll.InsertOne(sc, res); err != nil {
			return fmt.Errorf("insert reservation failed: %w", err)
		}
		return nil
	})
	if err != nil {
		if err == ErrDatesUnavailable {
			return err
		}
		return fmt.Errorf("reservation transaction failed: %w", err)
	}
	return nil
}

// UpdateDatesIfAvailable moves a reservation's interval and total price,
// re-running the conflict check, excluding the reservation itself, in the
// same transaction.
func (r *MongoReservationRepo) UpdateDatesIfAvailable(ctx context.Context, id string, start, end time.Time, totalPrice float64) error {
	res, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if res == nil {
		return fmt.Errorf("reservation with id %s not found", id)
	}

	err = r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		count, err := r.coll.CountDocuments(sc, overlapFilter(res.BoatID, start, end, id))
		if err != nil {
			return fmt.Errorf("conflict check failed: %w", err)
		}
		if count > 0 {
			return ErrDatesUnavailable
		}

		update := bson.M{"$set": bson.M{
			"start_date":  start,
			"end_date":    end,
			"total_price": totalPrice,
			"updated_at":  time.Now(),
		}}
		result, err := r.coll.UpdateOne(sc, bson.M{"id": id}, update)
		if err != nil {
			return fmt.Errorf("update reservation failed: %w", err)
		}
		if result.MatchedCount == 0 {
			return fmt.Errorf("reservation with id %s not found", id)
		}
		return nil
	})
	if err != nil {
		if err == ErrDatesUnavailable {
			return err
		}
		return fmt.Errorf("reservation transaction failed: %w", err)
	}
	return nil
}
