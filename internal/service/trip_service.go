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
	ErrTripNotFound     = errors.New("trip not found")
	ErrTripAccessDenied = errors.New("access denied to modify or delete this trip")
	ErrValidationFailed = errors.New("trip validation failed")
)

// TripInput carries the writable fields of a trip. Edits are full-record
// overwrites: every field here replaces the stored one.
//
// StartDate/EndDate are ISO-8601 date strings. Their ordering is deliberately
// not validated; a reversed range shows up later as a non-positive duration
// in the trip summary, which is the caller's signal to flag the trip.
type TripInput struct {
	Title       string
	Description string
	Destination string
	StartDate   string
	EndDate     string
	CoverImage  string
	TripType    domain.TripType
	IsFavorite  *bool
}

// TripService owns trip CRUD, the filtered listings and the per-trip summary.
type TripService interface {
	CreateTrip(ctx context.Context, userID primitive.ObjectID, input TripInput) (*domain.Trip, error)
	GetTripByID(ctx context.Context, tripID primitive.ObjectID) (*domain.Trip, error)
	ListTrips(ctx context.Context, userID primitive.ObjectID, query, tripType string) ([]domain.Trip, error)
	ExploreTrips(ctx context.Context, query, tripType string) ([]domain.Trip, error)
	UpdateTrip(ctx context.Context, userID, tripID primitive.ObjectID, input TripInput) (*domain.Trip, error)
	SetFavorite(ctx context.Context, userID, tripID primitive.ObjectID, favorite bool) (*domain.Trip, error)
	DeleteTrip(ctx context.Context, userID, tripID primitive.ObjectID) error
	GetTripSummary(ctx context.Context, tripID primitive.ObjectID) (itinerary.TripSummary, error)
}

// tripService implements the TripService interface.
type tripService struct {
	tripRepo     repository.TripRepository
	activityRepo repository.ActivityRepository
}

// NewTripService creates a new instance of tripService.
func NewTripService(tripRepo repository.TripRepository, activityRepo repository.ActivityRepository) TripService {
	return &tripService{
		tripRepo:     tripRepo,
		activityRepo: activityRepo,
	}
}

func validateTripInput(input TripInput) error {
	if input.Title == "" || input.Destination == "" {
		return ErrValidationFailed
	}
	if input.StartDate == "" || input.EndDate == "" {
		return ErrValidationFailed
	}
	if !input.TripType.IsValid() {
		return ErrValidationFailed
	}
	return nil
}

// CreateTrip handles the creation of a new trip for a user.
func (s *tripService) CreateTrip(ctx context.Context, userID primitive.ObjectID, input TripInput) (*domain.Trip, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required to create a trip")
	}
	if err := validateTripInput(input); err != nil {
		return nil, err
	}

	trip := &domain.Trip{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Destination: input.Destination,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		CoverImage:  input.CoverImage,
		TripType:    input.TripType,
		IsFavorite:  input.IsFavorite,
	}

	tripID, err := s.tripRepo.Create(ctx, trip)
	if err != nil {
		return nil, err
	}
	trip.ID = tripID
	// Fetch again so CreatedAt/UpdatedAt set by the repository come back.
	return s.tripRepo.GetByID(ctx, tripID)
}

// GetTripByID retrieves a single trip. Trips are publicly readable (the
// explore feed links to them); only mutations check ownership.
func (s *tripService) GetTripByID(ctx context.Context, tripID primitive.ObjectID) (*domain.Trip, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return trip, nil
}

// ListTrips returns the user's trips filtered by the free-text query and
// category selection. The repository delivers them most-recently-updated
// first and the filter preserves that order.
func (s *tripService) ListTrips(ctx context.Context, userID primitive.ObjectID, query, tripType string) ([]domain.Trip, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID cannot be nil")
	}
	trips, err := s.tripRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return itinerary.FilterTrips(trips, query, tripType), nil
}

// ExploreTrips returns every trip (newest first) filtered the same way as
// ListTrips. This backs the public explore feed.
func (s *tripService) ExploreTrips(ctx context.Context, query, tripType string) ([]domain.Trip, error) {
	trips, err := s.tripRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return itinerary.FilterTrips(trips, query, tripType), nil
}

// UpdateTrip overwrites an existing trip's fields, ensuring ownership.
func (s *tripService) UpdateTrip(ctx context.Context, userID, tripID primitive.ObjectID, input TripInput) (*domain.Trip, error) {
	if userID == primitive.NilObjectID || tripID == primitive.NilObjectID {
		return nil, errors.New("user ID and trip ID are required")
	}
	if err := validateTripInput(input); err != nil {
		return nil, err
	}

	existing, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	if existing.UserID != userID {
		return nil, ErrTripAccessDenied
	}

	existing.Title = input.Title
	existing.Description = input.Description
	existing.Destination = input.Destination
	existing.StartDate = input.StartDate
	existing.EndDate = input.EndDate
	existing.CoverImage = input.CoverImage
	existing.TripType = input.TripType
	existing.IsFavorite = input.IsFavorite

	if err := s.tripRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return s.tripRepo.GetByID(ctx, tripID)
}

// SetFavorite toggles the favorite flag on an owned trip.
func (s *tripService) SetFavorite(ctx context.Context, userID, tripID primitive.ObjectID, favorite bool) (*domain.Trip, error) {
	existing, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	if existing.UserID != userID {
		return nil, ErrTripAccessDenied
	}

	if err := s.tripRepo.SetFavorite(ctx, tripID, favorite); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return s.tripRepo.GetByID(ctx, tripID)
}

// DeleteTrip removes a trip and every activity that belongs to it.
//
// The document store has no cascading delete, so this is an explicit
// multi-step operation: activities go first, then the trip itself. If the
// second step fails the trip survives with no activities, which beats
// orphaned activities whose trip is gone, and retrying the delete converges.
func (s *tripService) DeleteTrip(ctx context.Context, userID, tripID primitive.ObjectID) error {
	existing, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTripNotFound
		}
		return err
	}
	if existing.UserID != userID {
		return ErrTripAccessDenied
	}

	if _, err := s.activityRepo.DeleteByTripID(ctx, tripID); err != nil {
		return err
	}

	if err := s.tripRepo.Delete(ctx, tripID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTripNotFound
		}
		return err
	}
	return nil
}

// GetTripSummary computes the trip's display statistics: inclusive duration,
// activity count and recorded spend. A non-positive duration means the
// stored date range is reversed; it is reported as-is for the caller to flag.
func (s *tripService) GetTripSummary(ctx context.Context, tripID primitive.ObjectID) (itinerary.TripSummary, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return itinerary.TripSummary{}, ErrTripNotFound
		}
		return itinerary.TripSummary{}, err
	}

	activities, err := s.activityRepo.GetByTripID(ctx, tripID)
	if err != nil {
		return itinerary.TripSummary{}, err
	}

	return itinerary.Summarize(*trip, activities), nil
}
