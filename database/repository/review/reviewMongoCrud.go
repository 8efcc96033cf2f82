// File: database/repository/review/reviewMongoCrud.go
package reviewRepo

import (
	"fmt"
	"time"

	"boatify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new review document.
func (r *MongoReviewRepo) Create(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// Update modifies an existing review document.
func (r *MongoReviewRepo) Update(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	review.UpdatedAt = time.Now()
	filter := bson.M{"id": review.ID}
	update := bson.M{"$set": review}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update review with id %s: %w", review.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("review with id %s not found", review.ID)
	}
	return nil
}

// Delete removes a review document by its ID.
func (r *MongoReviewRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete review with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("review with id %s not found", id)
	}
	return nil
}

// AverageForBoat computes the arithmetic mean of all ratings for the boat.
func (r *MongoReviewRepo) AverageForBoat(boatID string) (float64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"boat_id": boatID}},
		{"$group": bson.M{"_id": "$boat_id", "avg_rating": bson.M{"$avg": "$rating"}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate boat rating: %w", err)
	}
	defer cursor.Close(ctx)

	var row struct {
		AvgRating float64 `bson:"avg_rating"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&row); err != nil {
			return 0, fmt.Errorf("failed to decode boat rating: %w", err)
		}
		return row.AvgRating, nil
	}
	// No reviews: rating resets to zero.
	return 0, nil
}
