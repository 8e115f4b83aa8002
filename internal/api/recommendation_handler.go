package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/travel-planner/internal/domain"
	"voyago/travel-planner/internal/service"
)

// RecommendationHandler holds the recommendation service dependency.
type RecommendationHandler struct {
	recommendationService service.RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommendationService service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// RecommendationRequest is the payload for requesting destination
// suggestions.
type RecommendationRequest struct {
	Interests []string `json:"interests" binding:"required"`
	Location  string   `json:"location" binding:"required"`
}

// RecommendationResponse wraps the suggestions list.
type RecommendationResponse struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
}

// GetRecommendations proxies a recommendation request to the inference
// collaborator. Error responses carry a message field, matching what the
// web client expects to surface.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	var req RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	recommendations, err := h.recommendationService.GetRecommendations(c.Request.Context(), req.Interests, req.Location)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInterests) || errors.Is(err, service.ErrInvalidLocation) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate recommendations"})
		return
	}

	c.JSON(http.StatusOK, RecommendationResponse{Recommendations: recommendations})
}
