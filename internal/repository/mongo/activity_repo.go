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

const activityCollectionName = "activities"

// mongoActivityRepository implements repository.ActivityRepository
type mongoActivityRepository struct {
	collection *mongo.Collection
}

// NewMongoActivityRepository creates a new activity repository backed by MongoDB.
func NewMongoActivityRepository(db *mongo.Database) repository.ActivityRepository {
	return &mongoActivityRepository{
		collection: db.Collection(activityCollectionName),
	}
}

// Create inserts a new activity into the database.
func (r *mongoActivityRepository) Create(ctx context.Context, activity *domain.Activity) (primitive.ObjectID, error) {
	if activity.Title == "" || activity.TripID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("activity title and trip ID are required")
	}

	activity.ID = primitive.NewObjectID()
	now := time.Now().UTC().UnixMilli()
	activity.CreatedAt = now
	activity.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, activity)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByID retrieves an activity by its ID.
func (r *mongoActivityRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Activity, error) {
	var activity domain.Activity
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&activity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &activity, nil
}

// GetByTripID retrieves all activities for a trip, ordered by date string
// ascending. The per-day grouping downstream re-sorts chronologically; this
// sort just gives a stable arrival order.
func (r *mongoActivityRepository) GetByTripID(ctx context.Context, tripID primitive.ObjectID) ([]domain.Activity, error) {
	var activities []domain.Activity
	filter := bson.M{"tripId": tripID}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}

// Update overwrites an activity's mutable fields. The owning trip and the
// creation timestamp never change.
func (r *mongoActivityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	if activity.ID == primitive.NilObjectID {
		return errors.New("activity ID is required for update")
	}
	if activity.Title == "" {
		return errors.New("activity title cannot be empty")
	}

	filter := bson.M{"_id": activity.ID}
	update := bson.M{
		"$set": bson.M{
			"title":       activity.Title,
			"description": activity.Description,
			"date":        activity.Date,
			"time":        activity.Time,
			"location":    activity.Location,
			"cost":        activity.Cost,
			"notes":       activity.Notes,
			"imageUrl":    activity.ImageURL,
			"updatedAt":   time.Now().UTC().UnixMilli(),
			// Note: we specifically DO NOT set tripId here
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

// Delete removes a single activity.
func (r *mongoActivityRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteByTripID removes every activity belonging to a trip and returns how
// many were deleted. Used by the cascading trip delete; deleting a trip with
// no activities is not an error.
func (r *mongoActivityRepository) DeleteByTripID(ctx context.Context, tripID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"tripId": tripID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// EnsureActivityIndexes creates necessary indexes for the activities collection.
func EnsureActivityIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Trip detail view: filter by trip, sort by date.
			Keys:    bson.D{{Key: "tripId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
