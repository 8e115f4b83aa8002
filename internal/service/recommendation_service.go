package service

import (
	"context"
	"errors"
	"strings"

	"voyago/travel-planner/internal/domain"
	"voyago/travel-planner/internal/recommend"
)

// --- Error Definitions ---
var (
	ErrInvalidInterests = errors.New("invalid interests provided")
	ErrInvalidLocation  = errors.New("invalid location provided")
)

// RecommendationService validates recommendation requests and forwards them
// to the inference collaborator.
type RecommendationService interface {
	GetRecommendations(ctx context.Context, interests []string, location string) ([]domain.Recommendation, error)
}

// recommendationService implements the RecommendationService interface.
type recommendationService struct {
	client recommend.Client
}

// NewRecommendationService creates a new instance of recommendationService.
func NewRecommendationService(client recommend.Client) RecommendationService {
	return &recommendationService{client: client}
}

// GetRecommendations checks the request shape and delegates to the client.
// Validation mirrors the proxy contract: at least one interest and a
// non-blank location.
func (s *recommendationService) GetRecommendations(ctx context.Context, interests []string, location string) ([]domain.Recommendation, error) {
	if len(interests) == 0 {
		return nil, ErrInvalidInterests
	}
	for _, interest := range interests {
		if strings.TrimSpace(interest) == "" {
			return nil, ErrInvalidInterests
		}
	}
	if strings.TrimSpace(location) == "" {
		return nil, ErrInvalidLocation
	}

	recommendations, err := s.client.Recommend(ctx, interests, location)
	if err != nil {
		return nil, err
	}
	return recommendations, nil
}
