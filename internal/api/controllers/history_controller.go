package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"yourtour/internal/services"
	"yourtour/pkg/utils"
)

type HistoryController struct {
	tripService      services.TripServiceInterface
	embeddingService services.EmbeddingServiceInterface
}

func NewHistoryController(
	tripService services.TripServiceInterface,
	embeddingService services.EmbeddingServiceInterface,
) *HistoryController {
	return &HistoryController{
		tripService:      tripService,
		embeddingService: embeddingService,
	}
}

func (h *HistoryController) currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// ListTrips godoc
// @Summary List recent trips
// @Description Most recent trips for the authenticated user, newest first
// @Tags History
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /history [get]
func (h *HistoryController) ListTrips(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	trips, err := h.tripService.ListTrips(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// TripCities godoc
// @Summary Cities visited on a trip
// @Description Visited cities for one of the user's trips, newest first
// @Tags History
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /history/trip/{id} [get]
func (h *HistoryController) TripCities(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	cities, err := h.tripService.GetTripCities(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Trip cities fetched successfully")
}

// GetLocation godoc
// @Summary Location detail
// @Description A visited location with its stored facts
// @Tags History
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /history/location/{id} [get]
func (h *HistoryController) GetLocation(c *gin.Context) {
	location, err := h.tripService.GetLocation(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, location, "Location fetched successfully")
}

// SimilarLocations godoc
// @Summary Similar locations
// @Description Locations with facts semantically close to the given one
// @Tags History
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /history/location/{id}/similar [get]
func (h *HistoryController) SimilarLocations(c *gin.Context) {
	locations, err := h.embeddingService.SimilarLocations(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, locations, "Similar locations fetched successfully")
}
