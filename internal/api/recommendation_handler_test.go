package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"voyago/travel-planner/internal/domain"
	"voyago/travel-planner/internal/service"
)

// recommendationServiceFunc adapts a function to service.RecommendationService.
type recommendationServiceFunc func(ctx context.Context, interests []string, location string) ([]domain.Recommendation, error)

func (f recommendationServiceFunc) GetRecommendations(ctx context.Context, interests []string, location string) ([]domain.Recommendation, error) {
	return f(ctx, interests, location)
}

func recommendationRouter(svc service.RecommendationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/recommendations", NewRecommendationHandler(svc).GetRecommendations)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetRecommendations_Success(t *testing.T) {
	router := recommendationRouter(recommendationServiceFunc(func(_ context.Context, interests []string, location string) ([]domain.Recommendation, error) {
		assert.Equal(t, []string{"food"}, interests)
		assert.Equal(t, "Italy", location)
		return []domain.Recommendation{{Name: "Bologna", WhyItFits: "the food capital"}}, nil
	}))

	rec := postJSON(router, "/recommendations", `{"interests":["food"],"location":"Italy"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Bologna"`)
}

func TestGetRecommendations_MissingBodyFields(t *testing.T) {
	router := recommendationRouter(recommendationServiceFunc(func(_ context.Context, _ []string, _ string) ([]domain.Recommendation, error) {
		t.Fatal("service should not be called")
		return nil, nil
	}))

	rec := postJSON(router, "/recommendations", `{"interests":["food"]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message"`)
}

func TestGetRecommendations_ValidationErrorFromService(t *testing.T) {
	router := recommendationRouter(recommendationServiceFunc(func(_ context.Context, _ []string, _ string) ([]domain.Recommendation, error) {
		return nil, service.ErrInvalidInterests
	}))

	rec := postJSON(router, "/recommendations", `{"interests":["  "],"location":"Italy"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrInvalidInterests.Error())
}

func TestGetRecommendations_UpstreamFailure(t *testing.T) {
	router := recommendationRouter(recommendationServiceFunc(func(_ context.Context, _ []string, _ string) ([]domain.Recommendation, error) {
		return nil, errors.New("inference timed out")
	}))

	rec := postJSON(router, "/recommendations", `{"interests":["food"],"location":"Italy"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to generate recommendations")
}
