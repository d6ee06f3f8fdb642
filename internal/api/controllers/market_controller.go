package controllers

import (
	"github.com/gin-gonic/gin"

	"kissan/internal/services"
	"kissan/pkg/utils"
)

type MarketController struct {
	marketService services.MarketServiceInterface
}

func NewMarketController(marketService services.MarketServiceInterface) *MarketController {
	return &MarketController{
		marketService: marketService,
	}
}

func (m *MarketController) GetQuotes(c *gin.Context) {
	result := m.marketService.Quotes(
		c.Query("state"),
		c.Query("commodity"),
		c.Query("search"),
	)
	utils.RespondSuccess(c, result, "Market rates fetched successfully")
}
