package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"voyago/travel-planner/internal/domain"
	"voyago/travel-planner/internal/repository"
)

const tripCollectionName = "trips"

// mongoTripRepository implements repository.TripRepository
type mongoTripRepository struct {
	collection *mongo.Collection
}

// NewMongoTripRepository creates a new trip repository backed by MongoDB.
func NewMongoTripRepository(db *mongo.Database) repository.TripRepository {
	return &mongoTripRepository{
		collection: db.Collection(tripCollectionName),
	}
}

// Create inserts a new trip into the database.
func (r *mongoTripRepository) Create(ctx context.Context, trip *domain.Trip) (primitive.ObjectID, error) {
	if trip.Title == "" || trip.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("trip title and user ID are required")
	}

	trip.ID = primitive.NewObjectID()
	now := time.Now().UTC().UnixMilli()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, trip)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByID retrieves a trip by its ID.
func (r *mongoTripRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trip, error) {
	var trip domain.Trip
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&trip)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &trip, nil
}

// GetByUserID retrieves all trips owned by a user, most recently updated
// first. This is the order the owner's dashboard expects.
func (r *mongoTripRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Trip, error) {
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	return r.findTrips(ctx, filter, findOptions)
}

// GetAll retrieves every trip, most recently created first. This feeds the
// public explore listing.
func (r *mongoTripRepository) GetAll(ctx context.Context) ([]domain.Trip, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	return r.findTrips(ctx, bson.M{}, findOptions)
}

func (r *mongoTripRepository) findTrips(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Trip, error) {
	var trips []domain.Trip

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &trips); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return trips, nil
}

// Update overwrites a trip's mutable fields. Edits are full-record
// overwrites, not patches; only the owner and creation timestamp survive
// unchanged.
func (r *mongoTripRepository) Update(ctx context.Context, trip *domain.Trip) error {
	if trip.ID == primitive.NilObjectID {
		return errors.New("trip ID is required for update")
	}
	if trip.Title == "" {
		return errors.New("trip title cannot be empty")
	}

	filter := bson.M{"_id": trip.ID}
	update := bson.M{
		"$set": bson.M{
			"title":       trip.Title,
			"description": trip.Description,
			"destination": trip.Destination,
			"startDate":   trip.StartDate,
			"endDate":     trip.EndDate,
			"coverImage":  trip.CoverImage,
			"tripType":    trip.TripType,
			"isFavorite":  trip.IsFavorite,
			"updatedAt":   time.Now().UTC().UnixMilli(),
			// Note: we specifically DO NOT set userId or createdAt here
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// SetFavorite flips only the favorite flag, leaving updatedAt alone so the
// dashboard order does not reshuffle on a toggle.
func (r *mongoTripRepository) SetFavorite(ctx context.Context, id primitive.ObjectID, favorite bool) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"isFavorite": favorite}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a trip, ensuring it belongs to the specified user.
func (r *mongoTripRepository) Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error {
	// The filter ensures we only delete if the _id matches AND the userId
	// matches, so a user cannot delete another user's trip.
	filter := bson.M{
		"_id":    id,
		"userId": userID,
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// EnsureTripIndexes creates necessary indexes for the trips collection.
func EnsureTripIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Owner dashboard: filter by user, sort by recency.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "updatedAt", Value: -1}},
			Options: options.Index(),
		},
		{
			// Explore feed sorts on creation time.
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
