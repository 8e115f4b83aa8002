package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/travel-planner/internal/domain"
	"voyago/travel-planner/internal/itinerary"
	"voyago/travel-planner/internal/service"
)

// ActivityHandler holds the activity service dependency.
type ActivityHandler struct {
	activityService service.ActivityService
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// --- DTOs for API (Data Transfer Objects) ---

// ActivityRequest defines the expected JSON for creating or overwriting an
// activity.
type ActivityRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Date        string   `json:"date" binding:"required"`
	Time        string   `json:"time"`
	Location    string   `json:"location"`
	Cost        *float64 `json:"cost"`
	Notes       string   `json:"notes"`
	ImageURL    string   `json:"imageUrl" binding:"omitempty,url"`
}

// ActivityResponse is the DTO for returning activity details.
type ActivityResponse struct {
	ID          string   `json:"id"`
	TripID      string   `json:"tripId"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Date        string   `json:"date"`
	Time        string   `json:"time,omitempty"`
	Location    string   `json:"location,omitempty"`
	Cost        *float64 `json:"cost,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	CreatedAt   int64    `json:"createdAt"`
	UpdatedAt   int64    `json:"updatedAt"`
}

// DayGroupResponse is one calendar date's activities for the grouped view.
type DayGroupResponse struct {
	Date       string             `json:"date"`
	Activities []ActivityResponse `json:"activities"`
}

// MapActivityToResponse converts a domain.Activity to an ActivityResponse DTO.
func MapActivityToResponse(activity *domain.Activity) ActivityResponse {
	if activity == nil {
		return ActivityResponse{}
	}
	return ActivityResponse{
		ID:          activity.ID.Hex(),
		TripID:      activity.TripID.Hex(),
		Title:       activity.Title,
		Description: activity.Description,
		Date:        activity.Date,
		Time:        activity.Time,
		Location:    activity.Location,
		Cost:        activity.Cost,
		Notes:       activity.Notes,
		ImageURL:    activity.ImageURL,
		CreatedAt:   activity.CreatedAt,
		UpdatedAt:   activity.UpdatedAt,
	}
}

// MapActivitiesToResponse converts a slice of domain.Activity to DTOs.
func MapActivitiesToResponse(activities []domain.Activity) []ActivityResponse {
	responses := make([]ActivityResponse, len(activities))
	for i, activity := range activities {
		responses[i] = MapActivityToResponse(&activity)
	}
	return responses
}

// MapDayGroupsToResponse converts itinerary day groups to DTOs.
func MapDayGroupsToResponse(groups []itinerary.DayGroup) []DayGroupResponse {
	responses := make([]DayGroupResponse, len(groups))
	for i, group := range groups {
		responses[i] = DayGroupResponse{
			Date:       group.Date,
			Activities: MapActivitiesToResponse(group.Activities),
		}
	}
	return responses
}

func activityInputFromRequest(req ActivityRequest) service.ActivityInput {
	return service.ActivityInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Cost:        req.Cost,
		Notes:       req.Notes,
		ImageURL:    req.ImageURL,
	}
}

// respondActivityError maps service errors to HTTP statuses.
func respondActivityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrActivityNotFound), errors.Is(err, service.ErrTripNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrActivityAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrValidationFailed), errors.Is(err, service.ErrInvalidID):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// --- Handler Methods ---

// CreateActivity adds an activity to a trip the authenticated user owns.
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req ActivityRequest
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

	activity, err := h.activityService.CreateActivity(c.Request.Context(), userID, tripID, activityInputFromRequest(req))
	if err != nil {
		respondActivityError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MapActivityToResponse(activity))
}

// ListActivities returns a trip's activities. With ?grouped=true the result
// is bucketed per calendar date, buckets in chronological order, otherwise a
// flat list in date order.
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	tripID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	if c.Query("grouped") == "true" {
		groups, err := h.activityService.GetGroupedActivities(c.Request.Context(), tripID)
		if err != nil {
			respondActivityError(c, err)
			return
		}
		c.JSON(http.StatusOK, MapDayGroupsToResponse(groups))
		return
	}

	activities, err := h.activityService.GetActivitiesForTrip(c.Request.Context(), tripID)
	if err != nil {
		respondActivityError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapActivitiesToResponse(activities))
}

// UpdateActivity overwrites an activity on a trip the user owns.
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	var req ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := requesterID(c)
	if !ok {
		return
	}
	activityID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	activity, err := h.activityService.UpdateActivity(c.Request.Context(), userID, activityID, activityInputFromRequest(req))
	if err != nil {
		respondActivityError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapActivityToResponse(activity))
}

// DeleteActivity removes a single activity from a trip the user owns.
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	activityID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.activityService.DeleteActivity(c.Request.Context(), userID, activityID); err != nil {
		respondActivityError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
