package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"yourtour/internal/models/request_models"
	"yourtour/internal/services"
	"yourtour/pkg/utils"
)

type VisitController struct {
	visitService services.VisitServiceInterface
}

func NewVisitController(visitService services.VisitServiceInterface) *VisitController {
	return &VisitController{
		visitService: visitService,
	}
}

// RecordVisit godoc
// @Summary Record a city visit
// @Description Append a visit to the trip, generate facts on first visit and evaluate achievements
// @Tags Visits
// @Accept json
// @Produce json
// @Param request body request_models.RecordVisitRequest true "Visit payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /visits [post]
func (v *VisitController) RecordVisit(c *gin.Context) {
	var req request_models.RecordVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := v.visitService.RecordVisit(c.Request.Context(), userID, req.TripID, req.City, req.State)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Visit recorded successfully")
}
