package controllers

import (
	"github.com/gin-gonic/gin"
	"yourtour/internal/services"
	"yourtour/pkg/utils"
)

type BadgeController struct {
	badgeCatalog services.BadgeCatalogInterface
}

func NewBadgeController(badgeCatalog services.BadgeCatalogInterface) *BadgeController {
	return &BadgeController{
		badgeCatalog: badgeCatalog,
	}
}

// ListBadges godoc
// @Summary List the badge catalog
// @Description Every badge that can be earned, with descriptions and images
// @Tags Badges
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /badges [get]
func (b *BadgeController) ListBadges(c *gin.Context) {
	badges, err := b.badgeCatalog.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, badges, "Badges fetched successfully")
}
