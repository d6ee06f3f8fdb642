package controllers

import (
	"github.com/gin-gonic/gin"

	"kissan/internal/services"
	"kissan/pkg/utils"
)

type SchemeController struct {
	schemeService services.SchemeServiceInterface
}

func NewSchemeController(schemeService services.SchemeServiceInterface) *SchemeController {
	return &SchemeController{
		schemeService: schemeService,
	}
}

func (s *SchemeController) ListSchemes(c *gin.Context) {
	schemes, err := s.schemeService.ListSchemes(
		c.Request.Context(),
		c.Query("search"),
		c.Query("category"),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schemes, "Schemes fetched successfully")
}
