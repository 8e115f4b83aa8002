package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity is a dated sub-event belonging to exactly one Trip.
//
// Date is an ISO-8601 calendar date string ("2006-01-02"). Nothing enforces
// that it falls within the owning trip's date range.
// Optional text fields use the empty string for absence; Cost uses a pointer
// so that "no cost recorded" and "free" stay distinguishable.
type Activity struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TripID      primitive.ObjectID `bson:"tripId" json:"tripId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Date        string             `bson:"date" json:"date"`
	Time        string             `bson:"time,omitempty" json:"time,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Cost        *float64           `bson:"cost,omitempty" json:"cost,omitempty"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt   int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt   int64              `bson:"updatedAt" json:"updatedAt"`
}
