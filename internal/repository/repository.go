package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"voyago/travel-planner/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate record")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// TripRepository defines the interface for interacting with trip data.
//
// List results arrive already ordered: GetByUserID most-recently-updated
// first (the owner's dashboard), GetAll most-recently-created first (the
// public explore feed). The aggregation logic downstream preserves whatever
// order it receives.
type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trip, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Trip, error)
	GetAll(ctx context.Context) ([]domain.Trip, error)
	Update(ctx context.Context, trip *domain.Trip) error
	SetFavorite(ctx context.Context, id primitive.ObjectID, favorite bool) error
	Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error // Ensure the user owns the trip
}

// ActivityRepository defines the interface for interacting with activity data.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Activity, error)
	GetByTripID(ctx context.Context, tripID primitive.ObjectID) ([]domain.Activity, error)
	Update(ctx context.Context, activity *domain.Activity) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByTripID(ctx context.Context, tripID primitive.ObjectID) (int64, error)
}
