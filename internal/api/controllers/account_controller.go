package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kissan/internal/models/request_models"
	"kissan/internal/services"
	"kissan/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new farmer account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/accounts/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.CreateAccount(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a farmer and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}

// OAuthGoogle reports the provider redirect URL for a Google sign-in.
func (a *AccountController) OAuthGoogle(c *gin.Context) {
	var req request_models.OAuthStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	redirectURL, err := a.accountService.OAuthRedirectURL(req.RedirectTo)
	if err != nil {
		utils.RespondError(c, http.StatusServiceUnavailable, "OAuth provider not configured")
		return
	}

	utils.RespondSuccess(c, gin.H{"url": redirectURL}, "Redirect to provider")
}

// Session resolves the bearer identity. It never fails: a missing or bad
// token yields an empty session, not an error.
func (a *AccountController) Session(c *gin.Context) {
	userID := c.GetString("user_id")
	session := a.accountService.Session(c.Request.Context(), userID)
	if session.UserID == "" {
		utils.RespondSuccess(c, nil, "No active session")
		return
	}
	utils.RespondSuccess(c, session, "Session active")
}
