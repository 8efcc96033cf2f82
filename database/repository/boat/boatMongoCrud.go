// File: database/repository/boat/boatMongoCrud.go
package boatRepo

import (
	"fmt"
	"time"

	"boatify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new boat document.
func (r *MongoBoatRepo) Create(boat *models.Boat) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	boat.CreatedAt = now
	boat.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, boat)
	if err != nil {
		return fmt.Errorf("failed to create boat: %w", err)
	}
	return nil
}

// Update modifies an existing boat document.
func (r *MongoBoatRepo) Update(boat *models.Boat) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	boat.UpdatedAt = time.Now()
	filter := bson.M{"id": boat.ID}
	update := bson.M{"$set": boat}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update boat with id %s: %w", boat.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("boat with id %s not found", boat.ID)
	}
	return nil
}

// Delete removes a boat document by its ID. Reservations and reviews
// referencing the boat are left in place.
func (r *MongoBoatRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete boat with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("boat with id %s not found", id)
	}
	return nil
}

// SetRating writes a recomputed average rating to the boat.
func (r *MongoBoatRepo) SetRating(id string, rating float64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"rating": rating, "updated_at": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set rating for boat %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("boat with id %s not found", id)
	}
	return nil
}
