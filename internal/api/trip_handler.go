package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"voyago/travel-planner/internal/domain"
	"voyago/travel-planner/internal/itinerary"
	"voyago/travel-planner/internal/service"
)

// TripHandler holds the trip service dependency.
type TripHandler struct {
	tripService service.TripService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(tripService service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// --- DTOs for API (Data Transfer Objects) ---

// TripRequest defines the expected JSON for creating or overwriting a trip.
type TripRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Destination string          `json:"destination" binding:"required"`
	StartDate   string          `json:"startDate" binding:"required"`
	EndDate     string          `json:"endDate" binding:"required"`
	CoverImage  string          `json:"coverImage" binding:"omitempty,url"`
	TripType    domain.TripType `json:"tripType" binding:"required,oneof=adventure leisure work family romantic solo other"`
	IsFavorite  *bool           `json:"isFavorite"`
}

// SetFavoriteRequest toggles the favorite flag on a trip.
type SetFavoriteRequest struct {
	IsFavorite *bool `json:"isFavorite" binding:"required"`
}

// TripResponse is the DTO for returning trip details.
type TripResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Destination string          `json:"destination"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	CoverImage  string          `json:"coverImage,omitempty"`
	TripType    domain.TripType `json:"tripType"`
	IsFavorite  *bool           `json:"isFavorite,omitempty"`
	CreatedAt   int64           `json:"createdAt"`
	UpdatedAt   int64           `json:"updatedAt"`
}

// MapTripToResponse converts a domain.Trip to a TripResponse DTO.
func MapTripToResponse(trip *domain.Trip) TripResponse {
	if trip == nil {
		return TripResponse{}
	}
	return TripResponse{
		ID:          trip.ID.Hex(),
		UserID:      trip.UserID.Hex(),
		Title:       trip.Title,
		Description: trip.Description,
		Destination: trip.Destination,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		CoverImage:  trip.CoverImage,
		TripType:    trip.TripType,
		IsFavorite:  trip.IsFavorite,
		CreatedAt:   trip.CreatedAt,
		UpdatedAt:   trip.UpdatedAt,
	}
}

// MapTripsToResponse converts a slice of domain.Trip to TripResponse DTOs.
func MapTripsToResponse(trips []domain.Trip) []TripResponse {
	responses := make([]TripResponse, len(trips))
	for i, trip := range trips {
		responses[i] = MapTripToResponse(&trip)
	}
	return responses
}

func tripInputFromRequest(req TripRequest) service.TripInput {
	return service.TripInput{
		Title:       req.Title,
		Description: req.Description,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CoverImage:  req.CoverImage,
		TripType:    req.TripType,
		IsFavorite:  req.IsFavorite,
	}
}

// respondTripError maps service errors to HTTP statuses.
func respondTripError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTripNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrTripAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrValidationFailed), errors.Is(err, service.ErrInvalidID):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// requesterID pulls the authenticated user's ObjectID out of the context.
func requesterID(c *gin.Context) (primitive.ObjectID, bool) {
	userIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format in token.")
		return primitive.NilObjectID, false
	}
	return userID, true
}

// pathObjectID parses an ObjectID path parameter.
func pathObjectID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+param+" format.")
		return primitive.NilObjectID, false
	}
	return id, true
}

// --- Handler Methods ---

// CreateTrip creates a new trip owned by the authenticated user.
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := requesterID(c)
	if !ok {
		return
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), userID, tripInputFromRequest(req))
	if err != nil {
		respondTripError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MapTripToResponse(trip))
}

// ListTrips returns the authenticated user's trips, most recently updated
// first, filtered by the optional q (free-text) and type query parameters.
func (h *TripHandler) ListTrips(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	query := c.Query("q")
	tripType := c.DefaultQuery("type", itinerary.TypeFilterAll)

	trips, err := h.tripService.ListTrips(c.Request.Context(), userID, query, tripType)
	if err != nil {
		respondTripError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapTripsToResponse(trips))
}

// Explore returns every trip, newest first, with the same q/type filtering
// as ListTrips. No authentication required.
func (h *TripHandler) Explore(c *gin.Context) {
	query := c.Query("q")
	tripType := c.DefaultQuery("type", itinerary.TypeFilterAll)

	trips, err := h.tripService.ExploreTrips(c.Request.Context(), query, tripType)
	if err != nil {
		respondTripError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapTripsToResponse(trips))
}

// GetTrip returns a single trip by ID.
func (h *TripHandler) GetTrip(c *gin.Context) {
	tripID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	trip, err := h.tripService.GetTripByID(c.Request.Context(), tripID)
	if err != nil {
		respondTripError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapTripToResponse(trip))
}

// UpdateTrip overwrites a trip the authenticated user owns.
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := requesterID(c)
	if !ok {
		return
	}
	tripID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	trip, err := h.tripService.UpdateTrip(c.Request.Context(), userID, tripID, tripInputFromRequest(req))
	if err != nil {
		respondTripError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapTripToResponse(trip))
}

// SetFavorite toggles the favorite flag on an owned trip.
func (h *TripHandler) SetFavorite(c *gin.Context) {
	var req SetFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := requesterID(c)
	if !ok {
		return
	}
	tripID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	trip, err := h.tripService.SetFavorite(c.Request.Context(), userID, tripID, *req.IsFavorite)
	if err != nil {
		respondTripError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapTripToResponse(trip))
}

// DeleteTrip removes a trip and all of its activities.
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	tripID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.tripService.DeleteTrip(c.Request.Context(), userID, tripID); err != nil {
		respondTripError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetTripSummary returns the trip's derived statistics. A non-positive
// durationDays signals a reversed date range on the stored trip.
func (h *TripHandler) GetTripSummary(c *gin.Context) {
	tripID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	summary, err := h.tripService.GetTripSummary(c.Request.Context(), tripID)
	if err != nil {
		respondTripError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
