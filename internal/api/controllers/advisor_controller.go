package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kissan/internal/models/request_models"
	"kissan/internal/services"
	"kissan/pkg/utils"
)

type AdvisorController struct {
	advisorService services.AdvisorServiceInterface
}

func NewAdvisorController(advisorService services.AdvisorServiceInterface) *AdvisorController {
	return &AdvisorController{
		advisorService: advisorService,
	}
}

func (a *AdvisorController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reply, err := a.advisorService.Chat(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reply, "Reply generated")
}

func (a *AdvisorController) History(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}
	utils.RespondSuccess(c, a.advisorService.History(sessionID), "Chat history")
}

func (a *AdvisorController) Command(c *gin.Context) {
	var req request_models.CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	outcome := a.advisorService.Interpret(c.Request.Context(), req.Utterance, req.Language)
	utils.RespondSuccess(c, outcome, "Command interpreted")
}
