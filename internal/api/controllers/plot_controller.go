package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kissan/internal/models/request_models"
	"kissan/internal/services"
	"kissan/pkg/utils"
)

type PlotController struct {
	plotService services.PlotServiceInterface
}

func NewPlotController(plotService services.PlotServiceInterface) *PlotController {
	return &PlotController{
		plotService: plotService,
	}
}

func (p *PlotController) ListPlots(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	plots, err := p.plotService.ListPlots(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plots, "Plots fetched successfully")
}

func (p *PlotController) CreatePlot(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req request_models.SavePlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plot, err := p.plotService.CreatePlot(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plot, "Plot created successfully")
}

func (p *PlotController) UpdatePlot(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	plotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plot id")
		return
	}

	var req request_models.SavePlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plot, err := p.plotService.UpdatePlot(c.Request.Context(), accountID, plotID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plot, "Plot updated successfully")
}

func (p *PlotController) DeletePlot(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	plotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plot id")
		return
	}

	if err := p.plotService.DeletePlot(c.Request.Context(), accountID, plotID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plot deleted successfully")
}
