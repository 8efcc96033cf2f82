package boatRepo

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

// MongoBoatRepo implements BoatRepository using MongoDB.
type MongoBoatRepo struct {
	coll *mongo.Collection
}

// NewMongoBoatRepo creates a new instance of BoatRepository using MongoDB.
func NewMongoBoatRepo() BoatRepository {
	coll := database.MongoClient.Database("boatify").Collection("boats")
	repo := &MongoBoatRepo{coll: coll}

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
// unique name index backs the duplicate-name conflict check.
func (r *MongoBoatRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "price_per_day", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// findOne fetches a single boat by filter, mapping no-document to (nil, nil).
func (r *MongoBoatRepo) findOne(filter bson.M) (*models.Boat, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var boat models.Boat
	if err := r.coll.FindOne(ctx, filter).Decode(&boat); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch boat: %w", err)
	}
	return &boat, nil
}

// GetByID retrieves a boat by its unique ID.
func (r *MongoBoatRepo) GetByID(id string) (*models.Boat, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByName retrieves a boat by its unique name.
func (r *MongoBoatRepo) GetByName(name string) (*models.Boat, error) {
	return r.findOne(bson.M{"name": name})
}

func (r *MongoBoatRepo) findMany(filter bson.M, opts *options.FindOptions) ([]models.Boat, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve boats: %w", err)
	}
	defer cursor.Close(ctx)

	var boats []models.Boat
	for cursor.Next(ctx) {
		var b models.Boat
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode boat: %w", err)
		}
		boats = append(boats, b)
	}
	return boats, nil
}

// GetAll retrieves all boats regardless of status.
func (r *MongoBoatRepo) GetAll() ([]models.Boat, error) {
	return r.findMany(bson.M{}, nil)
}

// GetPublished retrieves all published boats.
func (r *MongoBoatRepo) GetPublished() ([]models.Boat, error) {
	return r.findMany(bson.M{"status": models.BoatStatusPublished}, nil)
}
