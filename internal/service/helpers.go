package service

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID signals an identifier that is not a valid ObjectID hex string.
var ErrInvalidID = errors.New("invalid identifier")

// ParseObjectID converts a hex identifier (as carried in URLs and JWTs) into
// an ObjectID.
func ParseObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return objectID, nil
}
