// File: database/repository/reservation/reservationMongoQueries.go
package reservationRepo

import (
	"fmt"
	"time"

	"boatify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HasConflict reports whether a blocking-status reservation for the boat
// overlaps [start, end]. Intervals are closed on both ends, so a reservation
// ending the day another starts still conflicts.
func (r *MongoReservationRepo) HasConflict(boatID string, start, end time.Time, excludeID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, overlapFilter(boatID, start, end, excludeID), options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check reservation conflict: %w", err)
	}
	return count > 0, nil
}

// GetBookedRanges lists the intervals of blocking-status reservations for a
// boat.
func (r *MongoReservationRepo) GetBookedRanges(boatID string) ([]models.DateRange, error) {
	filter := bson.M{
		"boat_id": boatID,
		"status":  bson.M{"$in": models.BlockingStatuses},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "start_date", Value: 1}}).
		SetProjection(bson.M{"start_date": 1, "end_date": 1})

	reservations, err := r.findMany(filter, opts)
	if err != nil {
		return nil, err
	}

	ranges := make([]models.DateRange, 0, len(reservations))
	for _, res := range reservations {
		ranges = append(ranges, models.DateRange{StartDate: res.StartDate, EndDate: res.EndDate})
	}
	return ranges, nil
}

// UpdateStatus sets a reservation's status.
func (r *MongoReservationRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update reservation %s status: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reservation with id %s not found", id)
	}
	return nil
}

// Delete removes a reservation document by its ID.
func (r *MongoReservationRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete reservation with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("reservation with id %s not found", id)
	}
	return nil
}

// HasCompleted reports whether the user has at least one completed
// reservation for the boat.
func (r *MongoReservationRepo) HasCompleted(userID, boatID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"user_id": userID,
		"boat_id": boatID,
		"status":  models.ReservationCompleted,
	}
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check completed reservations: %w", err)
	}
	return count > 0, nil
}

// TimeOutStalePending bulk-transitions pending reservations created at or
// before the cutoff to timed_out. Rerunning it is harmless: swept rows no
// longer match the pending filter.
func (r *MongoReservationRepo) TimeOutStalePending(cutoff time.Time) (int64, error) {
	ctx, cancel := newContext(30 * time.Second)
	defer cancel()

	filter := bson.M{
		"status":     models.ReservationPending,
		"created_at": bson.M{"$lte": cutoff},
	}
	update := bson.M{"$set": bson.M{"status": models.ReservationTimedOut, "updated_at": time.Now()}}

	result, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to time out stale reservations: %w", err)
	}
	return result.ModifiedCount, nil
}

// CountByBoat aggregates reservation counts per boat, descending, joining in
// the boat name for the report.
func (r *MongoReservationRepo) CountByBoat(limit int) ([]models.BoatReservationCount, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$boat_id", "reservations": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"reservations": -1}},
		{"$limit": limit},
		{"$lookup": bson.M{
			"from":         "boats",
			"localField":   "_id",
			"foreignField": "id",
			"as":           "boat",
		}},
		{"$addFields": bson.M{
			"boat_name": bson.M{"$ifNull": bson.A{bson.M{"$first": "$boat.name"}, ""}},
		}},
		{"$project": bson.M{"boat": 0}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate reservation counts: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []models.BoatReservationCount
	for cursor.Next(ctx) {
		var row models.BoatReservationCount
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode reservation count: %w", err)
		}
		counts = append(counts, row)
	}
	return counts, nil
}
