package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"boatify/database"
	"boatify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo creates a new instance of ReservationRepository
// using MongoDB.
func NewMongoReservationRepo() ReservationRepository {
	coll := database.MongoClient.Database("boatify").Collection("reservations")
	repo := &MongoReservationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries. The
// compound index backs the overlap query.
func (r *MongoReservationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{
			{Key: "boat_id", Value: 1},
			{Key: "start_date", Value: 1},
			{Key: "end_date", Value: 1},
			{Key: "status", Value: 1},
		}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// overlapFilter is the closed-interval overlap predicate over the blocking
// statuses: start_date <= end AND end_date >= start.
func overlapFilter(boatID string, start, end time.Time, excludeID string) bson.M {
	filter := bson.M{
		"boat_id":    boatID,
		"status":     bson.M{"$in": models.BlockingStatuses},
		"start_date": bson.M{"$lte": end},
		"end_date":   bson.M{"$gte": start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return filter
}

// GetByID retrieves a reservation by its unique ID.
func (r *MongoReservationRepo) GetByID(id string) (*models.Reservation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var res models.Reservation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch reservation: %w", err)
	}
	return &res, nil
}

func (r *MongoReservationRepo) findMany(filter bson.M, opts *options.FindOptions) ([]models.Reservation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	for cursor.Next(ctx) {
		var res models.Reservation
		if err := cursor.Decode(&res); err != nil {
			return nil, fmt.Errorf("failed to decode reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

// GetByUser retrieves a user's reservations sorted by start date.
func (r *MongoReservationRepo) GetByUser(userID string) ([]models.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}})
	return r.findMany(bson.M{"user_id": userID}, opts)
}

// GetAll retrieves all reservations sorted by creation time, newest first.
func (r *MongoReservationRepo) GetAll() ([]models.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.findMany(bson.M{}, opts)
}
