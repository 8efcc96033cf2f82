// File: database/repository/boat/boatMongoQueries.go
package boatRepo

import (
	"fmt"
	"time"

	"boatify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// searchFilter translates a BoatSearchFilter into a Mongo filter document.
// Date-range availability is resolved by the service layer against the
// reservation collection, not here.
func searchFilter(f models.BoatSearchFilter) bson.M {
	filter := bson.M{"status": models.BoatStatusPublished}

	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.PriceMin != nil || f.PriceMax != nil {
		rng := bson.M{}
		if f.PriceMin != nil {
			rng["$gte"] = *f.PriceMin
		}
		if f.PriceMax != nil {
			rng["$lte"] = *f.PriceMax
		}
		filter["price_per_day"] = rng
	}
	if f.CapacityMin != nil || f.CapacityMax != nil {
		rng := bson.M{}
		if f.CapacityMin != nil {
			rng["$gte"] = *f.CapacityMin
		}
		if f.CapacityMax != nil {
			rng["$lte"] = *f.CapacityMax
		}
		filter["capacity"] = rng
	}
	if f.WithCaptain != nil {
		filter["with_captain"] = *f.WithCaptain
	}
	if f.RatingMin != nil {
		filter["rating"] = bson.M{"$gte": *f.RatingMin}
	}
	if f.YearMin != nil || f.YearMax != nil {
		rng := bson.M{}
		if f.YearMin != nil {
			rng["$gte"] = *f.YearMin
		}
		if f.YearMax != nil {
			rng["$lte"] = *f.YearMax
		}
		filter["year"] = rng
	}
	if f.LengthMin != nil || f.LengthMax != nil {
		rng := bson.M{}
		if f.LengthMin != nil {
			rng["$gte"] = *f.LengthMin
		}
		if f.LengthMax != nil {
			rng["$lte"] = *f.LengthMax
		}
		filter["length"] = rng
	}
	if f.CabinsMin != nil {
		filter["cabins"] = bson.M{"$gte": *f.CabinsMin}
	}
	if f.Location != "" {
		filter["location"] = bson.M{"$regex": f.Location, "$options": "i"}
	}
	return filter
}

func searchSort(sort string) bson.D {
	switch sort {
	case "price-asc":
		return bson.D{{Key: "price_per_day", Value: 1}}
	case "price-desc":
		return bson.D{{Key: "price_per_day", Value: -1}}
	case "capacity":
		return bson.D{{Key: "capacity", Value: -1}}
	default:
		return bson.D{{Key: "created_at", Value: -1}}
	}
}

// Search returns published boats matching the filter, plus the total match
// count before pagination.
func (r *MongoBoatRepo) Search(f models.BoatSearchFilter) ([]models.Boat, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := searchFilter(f)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count boats: %w", err)
	}

	opts := options.Find().
		SetSort(searchSort(f.Sort)).
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))

	boats, err := r.findMany(filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return boats, total, nil
}

// FilterLimits aggregates attribute bounds over published boats.
func (r *MongoBoatRepo) FilterLimits() (*models.BoatFilterLimits, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"status": models.BoatStatusPublished}},
		{"$group": bson.M{
			"_id":          nil,
			"min_price":    bson.M{"$min": "$price_per_day"},
			"max_price":    bson.M{"$max": "$price_per_day"},
			"min_capacity": bson.M{"$min": "$capacity"},
			"max_capacity": bson.M{"$max": "$capacity"},
			"min_year":     bson.M{"$min": "$year"},
			"max_year":     bson.M{"$max": "$year"},
			"min_length":   bson.M{"$min": "$length"},
			"max_length":   bson.M{"$max": "$length"},
			"min_cabins":   bson.M{"$min": "$cabins"},
			"max_cabins":   bson.M{"$max": "$cabins"},
		}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate filter limits: %w", err)
	}
	defer cursor.Close(ctx)

	var row struct {
		MinPrice    float64 `bson:"min_price"`
		MaxPrice    float64 `bson:"max_price"`
		MinCapacity float64 `bson:"min_capacity"`
		MaxCapacity float64 `bson:"max_capacity"`
		MinYear     float64 `bson:"min_year"`
		MaxYear     float64 `bson:"max_year"`
		MinLength   float64 `bson:"min_length"`
		MaxLength   float64 `bson:"max_length"`
		MinCabins   float64 `bson:"min_cabins"`
		MaxCabins   float64 `bson:"max_cabins"`
	}

	limits := &models.BoatFilterLimits{}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode filter limits: %w", err)
		}
		limits.Price = models.RangeLimit{Min: row.MinPrice, Max: row.MaxPrice}
		limits.Capacity = models.RangeLimit{Min: row.MinCapacity, Max: row.MaxCapacity}
		limits.Year = models.RangeLimit{Min: row.MinYear, Max: row.MaxYear}
		limits.Length = models.RangeLimit{Min: row.MinLength, Max: row.MaxLength}
		limits.Cabins = models.RangeLimit{Min: row.MinCabins, Max: row.MaxCabins}
	}
	return limits, nil
}
