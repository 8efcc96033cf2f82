package models

import "time"

// Boat hull categories.
const (
	BoatTypeCatamaran = "katamaranas"
	BoatTypeYacht     = "jachta"
	BoatTypeMotor     = "motorinis"
	BoatTypeRowing    = "valtis"
)

// Boat publication statuses.
const (
	BoatStatusDraft     = "draft"
	BoatStatusPublished = "published"
)

// BoatTypes lists the recognized hull categories.
var BoatTypes = []string{BoatTypeCatamaran, BoatTypeYacht, BoatTypeMotor, BoatTypeRowing}

// Boat represents a rentable boat listing. Rating is derived from reviews and
// never written directly by operators.
type Boat struct {
	ID          string    `bson:"id" json:"id"`
	Type        string    `bson:"type" json:"type"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	PricePerDay float64   `bson:"price_per_day" json:"pricePerDay"`
	Capacity    int       `bson:"capacity" json:"capacity"`
	WithCaptain bool      `bson:"with_captain" json:"withCaptain"`
	Rating      float64   `bson:"rating" json:"rating"`
	Status      string    `bson:"status" json:"status"`
	Location    string    `bson:"location,omitempty" json:"location,omitempty"`
	Year        int       `bson:"year,omitempty" json:"year,omitempty"`
	Length      float64   `bson:"length,omitempty" json:"length,omitempty"`
	Cabins      int       `bson:"cabins,omitempty" json:"cabins,omitempty"`
	Images      []string  `bson:"images,omitempty" json:"images,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// BoatInput is the payload for creating or updating a boat. Pointer fields
// distinguish "absent" from zero values on update.
type BoatInput struct {
	Type        string   `json:"type" binding:"omitempty,oneof=katamaranas jachta motorinis valtis"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PricePerDay *float64 `json:"pricePerDay" binding:"omitempty,gt=0"`
	Capacity    *int     `json:"capacity" binding:"omitempty,gt=0"`
	WithCaptain *bool    `json:"withCaptain"`
	Status      string   `json:"status" binding:"omitempty,oneof=draft published"`
	Location    string   `json:"location"`
	Year        *int     `json:"year"`
	Length      *float64 `json:"length"`
	Cabins      *int     `json:"cabins"`
	Images      []string `json:"images"`
}

// BoatSearchFilter captures the public search query parameters.
type BoatSearchFilter struct {
	Type        string
	PriceMin    *float64
	PriceMax    *float64
	CapacityMin *int
	CapacityMax *int
	WithCaptain *bool
	RatingMin   *float64
	YearMin     *int
	YearMax     *int
	LengthMin   *float64
	LengthMax   *float64
	CabinsMin   *int
	Location    string
	StartDate   *time.Time
	EndDate     *time.Time
	Sort        string
	Page        int
	Limit       int
}

// BoatSearchResult is a paginated search response.
type BoatSearchResult struct {
	Boats []Boat `json:"boats"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Pages int    `json:"pages"`
}

// RangeLimit is a min/max pair for one filterable attribute.
type RangeLimit struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// BoatFilterLimits aggregates attribute bounds over published boats, used by
// the search UI to size its sliders.
type BoatFilterLimits struct {
	Price    RangeLimit `json:"price"`
	Capacity RangeLimit `json:"capacity"`
	Year     RangeLimit `json:"year"`
	Length   RangeLimit `json:"length"`
	Cabins   RangeLimit `json:"cabins"`
}
