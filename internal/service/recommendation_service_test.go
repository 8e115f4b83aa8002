package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/travel-planner/internal/domain"
	"voyago/travel-planner/internal/service"
)

// clientFunc adapts a function to the recommend.Client interface.
type clientFunc func(ctx context.Context, interests []string, location string) ([]domain.Recommendation, error)

func (f clientFunc) Recommend(ctx context.Context, interests []string, location string) ([]domain.Recommendation, error) {
	return f(ctx, interests, location)
}

func TestRecommendationService_DelegatesToClient(t *testing.T) {
	want := []domain.Recommendation{{Name: "Kyoto", WhyItFits: "temples and food"}}
	svc := service.NewRecommendationService(clientFunc(func(_ context.Context, interests []string, location string) ([]domain.Recommendation, error) {
		assert.Equal(t, []string{"food", "history"}, interests)
		assert.Equal(t, "Japan", location)
		return want, nil
	}))

	got, err := svc.GetRecommendations(context.Background(), []string{"food", "history"}, "Japan")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRecommendationService_EmptyInterests(t *testing.T) {
	svc := service.NewRecommendationService(clientFunc(func(_ context.Context, _ []string, _ string) ([]domain.Recommendation, error) {
		t.Fatal("client should not be called for invalid input")
		return nil, nil
	}))

	_, err := svc.GetRecommendations(context.Background(), nil, "Japan")

	assert.ErrorIs(t, err, service.ErrInvalidInterests)
}

func TestRecommendationService_BlankInterest(t *testing.T) {
	svc := service.NewRecommendationService(clientFunc(func(_ context.Context, _ []string, _ string) ([]domain.Recommendation, error) {
		t.Fatal("client should not be called for invalid input")
		return nil, nil
	}))

	_, err := svc.GetRecommendations(context.Background(), []string{"food", "   "}, "Japan")

	assert.ErrorIs(t, err, service.ErrInvalidInterests)
}

func TestRecommendationService_BlankLocation(t *testing.T) {
	svc := service.NewRecommendationService(clientFunc(func(_ context.Context, _ []string, _ string) ([]domain.Recommendation, error) {
		t.Fatal("client should not be called for invalid input")
		return nil, nil
	}))

	_, err := svc.GetRecommendations(context.Background(), []string{"food"}, "  ")

	assert.ErrorIs(t, err, service.ErrInvalidLocation)
}

func TestRecommendationService_ClientError(t *testing.T) {
	clientErr := errors.New("upstream unavailable")
	svc := service.NewRecommendationService(clientFunc(func(_ context.Context, _ []string, _ string) ([]domain.Recommendation, error) {
		return nil, clientErr
	}))

	_, err := svc.GetRecommendations(context.Background(), []string{"food"}, "Japan")

	assert.ErrorIs(t, err, clientErr)
}
