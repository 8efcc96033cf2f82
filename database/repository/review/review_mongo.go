package reviewRepo

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

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	coll := database.MongoClient.Database("boatify").Collection("reviews")
	repo := &MongoReviewRepo{coll: coll}

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
// unique (user_id, boat_id) index enforces one review per user per boat.
func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "boat_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "boat_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// findOne fetches a single review by filter, mapping no-document to (nil, nil).
func (r *MongoReviewRepo) findOne(filter bson.M) (*models.Review, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var review models.Review
	if err := r.coll.FindOne(ctx, filter).Decode(&review); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch review: %w", err)
	}
	return &review, nil
}

// GetByID retrieves a review by its unique ID.
func (r *MongoReviewRepo) GetByID(id string) (*models.Review, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByUserAndBoat retrieves the single review a user left for a boat.
func (r *MongoReviewRepo) GetByUserAndBoat(userID, boatID string) (*models.Review, error) {
	return r.findOne(bson.M{"user_id": userID, "boat_id": boatID})
}

func (r *MongoReviewRepo) findMany(filter bson.M, opts *options.FindOptions) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	for cursor.Next(ctx) {
		var rv models.Review
		if err := cursor.Decode(&rv); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, nil
}

// GetByBoat retrieves all reviews for a boat, newest first.
func (r *MongoReviewRepo) GetByBoat(boatID string) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.findMany(bson.M{"boat_id": boatID}, opts)
}

// GetAll retrieves all reviews.
func (r *MongoReviewRepo) GetAll() ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.findMany(bson.M{}, opts)
}
