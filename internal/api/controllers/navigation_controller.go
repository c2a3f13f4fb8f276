package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"yourtour/internal/models/request_models"
	"yourtour/internal/services"
	"yourtour/pkg/utils"
)

type NavigationController struct {
	navigationService services.NavigationServiceInterface
	tripService       services.TripServiceInterface
}

func NewNavigationController(
	navigationService services.NavigationServiceInterface,
	tripService services.TripServiceInterface,
) *NavigationController {
	return &NavigationController{
		navigationService: navigationService,
		tripService:       tripService,
	}
}

// Geocode godoc
// @Summary Geocode an address
// @Description Resolve a free-form address to coordinates
// @Tags Navigation
// @Produce json
// @Param address path string true "Address to geocode"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /navigation/geocode/{address} [get]
func (n *NavigationController) Geocode(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		utils.RespondError(c, http.StatusBadRequest, "Address is required")
		return
	}

	result, err := n.navigationService.Geocode(c.Request.Context(), address)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Address geocoded successfully")
}

// ReverseGeocode godoc
// @Summary Reverse geocode coordinates
// @Description Resolve coordinates to the containing city and state
// @Tags Navigation
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /navigation/reverse [get]
func (n *NavigationController) ReverseGeocode(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		utils.RespondError(c, http.StatusBadRequest, "lat and lon query parameters are required")
		return
	}

	place, err := n.navigationService.ReverseGeocode(c.Request.Context(), lat, lon)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Coordinates resolved")
}

// NearestCity godoc
// @Summary Nearest reference city
// @Description Pick the best reference city for the given coordinates
// @Tags Navigation
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /navigation/nearest-city [get]
func (n *NavigationController) NearestCity(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		utils.RespondError(c, http.StatusBadRequest, "lat and lon query parameters are required")
		return
	}

	result, err := n.navigationService.NearestCity(lat, lon)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Nearest city resolved")
}

// Directions godoc
// @Summary Plan a trip
// @Description Geocode both endpoints, fetch the driving route and persist the trip
// @Tags Navigation
// @Accept json
// @Produce json
// @Param request body request_models.DirectionsRequest true "Trip endpoints"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /navigation/directions [post]
func (n *NavigationController) Directions(c *gin.Context) {
	var req request_models.DirectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := n.tripService.PlanTrip(c.Request.Context(), userID, req.Start, req.End)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Directions generated successfully")
}
