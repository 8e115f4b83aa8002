package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TripType categorizes a trip for filtering and display.
type TripType string

const (
	TripTypeAdventure TripType = "adventure"
	TripTypeLeisure   TripType = "leisure"
	TripTypeWork      TripType = "work"
	TripTypeFamily    TripType = "family"
	TripTypeRomantic  TripType = "romantic"
	TripTypeSolo      TripType = "solo"
	TripTypeOther     TripType = "other"
)

// TripTypes lists every valid trip category.
var TripTypes = []TripType{
	TripTypeAdventure,
	TripTypeLeisure,
	TripTypeWork,
	TripTypeFamily,
	TripTypeRomantic,
	TripTypeSolo,
	TripTypeOther,
}

// IsValid reports whether t is one of the known trip categories.
func (t TripType) IsValid() bool {
	for _, known := range TripTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Trip represents a user-owned itinerary with a date range and destination.
//
// StartDate and EndDate are ISO-8601 calendar date strings ("2006-01-02").
// StartDate <= EndDate is expected but deliberately not enforced anywhere;
// a reversed range surfaces to callers as a non-positive duration.
// CreatedAt/UpdatedAt are Unix timestamps in milliseconds.
type Trip struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Destination string             `bson:"destination" json:"destination"`
	StartDate   string             `bson:"startDate" json:"startDate"`
	EndDate     string             `bson:"endDate" json:"endDate"`
	CoverImage  string             `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	TripType    TripType           `bson:"tripType" json:"tripType"`
	IsFavorite  *bool              `bson:"isFavorite,omitempty" json:"isFavorite,omitempty"`
	CreatedAt   int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt   int64              `bson:"updatedAt" json:"updatedAt"`
}

// Favorite reports the favorite flag, treating absence as false.
func (t *Trip) Favorite() bool {
	return t.IsFavorite != nil && *t.IsFavorite
}
