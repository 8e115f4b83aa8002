package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"voyago/travel-planner/internal/domain"
	"voyago/travel-planner/internal/itinerary"
	"voyago/travel-planner/internal/repository"
)

// --- Error Definitions ---
var (
	ErrActivityNotFound     = errors.New("activity not found")
	ErrActivityAccessDenied = errors.New("access denied to modify or delete this activity")
)

// ActivityInput carries the writable fields of an activity. Like trips,
// edits are full-record overwrites.
//
// Date is an ISO-8601 date string. Whether it falls inside the owning trip's
// range is deliberately not checked anywhere.
type ActivityInput struct {
	Title       string
	Description string
	Date        string
	Time        string
	Location    string
	Cost        *float64
	Notes       string
	ImageURL    string
}

// ActivityService owns activity CRUD and the per-day grouping for a trip's
// detail view. All mutations check ownership through the owning trip.
type ActivityService interface {
	CreateActivity(ctx context.Context, userID, tripID primitive.ObjectID, input ActivityInput) (*domain.Activity, error)
	GetActivitiesForTrip(ctx context.Context, tripID primitive.ObjectID) ([]domain.Activity, error)
	GetGroupedActivities(ctx context.Context, tripID primitive.ObjectID) ([]itinerary.DayGroup, error)
	UpdateActivity(ctx context.Context, userID, activityID primitive.ObjectID, input ActivityInput) (*domain.Activity, error)
	DeleteActivity(ctx context.Context, userID, activityID primitive.ObjectID) error
}

// activityService implements the ActivityService interface.
type activityService struct {
	activityRepo repository.ActivityRepository
	tripRepo     repository.TripRepository
}

// NewActivityService creates a new instance of activityService.
func NewActivityService(activityRepo repository.ActivityRepository, tripRepo repository.TripRepository) ActivityService {
	return &activityService{
		activityRepo: activityRepo,
		tripRepo:     tripRepo,
	}
}

// ownedTrip loads a trip and verifies the user owns it.
func (s *activityService) ownedTrip(ctx context.Context, userID, tripID primitive.ObjectID) (*domain.Trip, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	if trip.UserID != userID {
		return nil, ErrActivityAccessDenied
	}
	return trip, nil
}

// CreateActivity adds an activity to a trip the user owns.
func (s *activityService) CreateActivity(ctx context.Context, userID, tripID primitive.ObjectID, input ActivityInput) (*domain.Activity, error) {
	if input.Title == "" || input.Date == "" {
		return nil, ErrValidationFailed
	}
	if _, err := s.ownedTrip(ctx, userID, tripID); err != nil {
		return nil, err
	}

	activity := &domain.Activity{
		TripID:      tripID,
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Time:        input.Time,
		Location:    input.Location,
		Cost:        input.Cost,
		Notes:       input.Notes,
		ImageURL:    input.ImageURL,
	}

	activityID, err := s.activityRepo.Create(ctx, activity)
	if err != nil {
		return nil, err
	}
	return s.activityRepo.GetByID(ctx, activityID)
}

// GetActivitiesForTrip returns a trip's activities in repository order
// (date string ascending). Trip detail pages are publicly readable.
func (s *activityService) GetActivitiesForTrip(ctx context.Context, tripID primitive.ObjectID) ([]domain.Activity, error) {
	if tripID == primitive.NilObjectID {
		return nil, errors.New("trip ID cannot be nil")
	}
	return s.activityRepo.GetByTripID(ctx, tripID)
}

// GetGroupedActivities returns the trip's activities bucketed per calendar
// date, buckets in chronological order.
func (s *activityService) GetGroupedActivities(ctx context.Context, tripID primitive.ObjectID) ([]itinerary.DayGroup, error) {
	activities, err := s.GetActivitiesForTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return itinerary.GroupActivitiesByDate(activities), nil
}

// UpdateActivity overwrites an activity's fields, ensuring the user owns the
// trip it belongs to.
func (s *activityService) UpdateActivity(ctx context.Context, userID, activityID primitive.ObjectID, input ActivityInput) (*domain.Activity, error) {
	if input.Title == "" || input.Date == "" {
		return nil, ErrValidationFailed
	}

	existing, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	if _, err := s.ownedTrip(ctx, userID, existing.TripID); err != nil {
		return nil, err
	}

	existing.Title = input.Title
	existing.Description = input.Description
	existing.Date = input.Date
	existing.Time = input.Time
	existing.Location = input.Location
	existing.Cost = input.Cost
	existing.Notes = input.Notes
	existing.ImageURL = input.ImageURL

	if err := s.activityRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return s.activityRepo.GetByID(ctx, activityID)
}

// DeleteActivity removes a single activity, ensuring ownership through the
// owning trip.
func (s *activityService) DeleteActivity(ctx context.Context, userID, activityID primitive.ObjectID) error {
	existing, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrActivityNotFound
		}
		return err
	}
	if _, err := s.ownedTrip(ctx, userID, existing.TripID); err != nil {
		return err
	}

	if err := s.activityRepo.Delete(ctx, activityID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrActivityNotFound
		}
		return err
	}
	return nil
}
