package controllers

import (
	"github.com/gin-gonic/gin"
	"yourtour/internal/services"
	"yourtour/pkg/utils"
)

type FactsController struct {
	factsService services.FactsServiceInterface
}

func NewFactsController(factsService services.FactsServiceInterface) *FactsController {
	return &FactsController{
		factsService: factsService,
	}
}

// GenerateCityFacts godoc
// @Summary Generate facts for a city
// @Description Fetch the city's Wikipedia article and summarize it into structured facts
// @Tags Facts
// @Produce json
// @Param city path string true "City name"
// @Param state path string true "State name"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /generate/city/{city}/{state} [get]
func (f *FactsController) GenerateCityFacts(c *gin.Context) {
	facts, err := f.factsService.GenerateCityFacts(c.Request.Context(), c.Param("city"), c.Param("state"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, facts, "Facts generated successfully")
}
