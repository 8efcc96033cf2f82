package models

import "time"

// Review is a user's rating of a boat they have rented. At most one review
// exists per (user, boat) pair; a second submission updates the first.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	BoatID    string    `bson:"boat_id" json:"boatId"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ReviewInput is the payload for submitting or updating a review.
type ReviewInput struct {
	BoatID  string `json:"boatId" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
