package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnlive/internal/models/request_models"
	"learnlive/internal/models/response_models"
	"learnlive/internal/services"
	"learnlive/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Token godoc
// @Summary Issue an access token
// @Description OAuth2 password flow; username carries the account email
// @Tags Accounts
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} response_models.TokenResponse
// @Failure 401 {object} utils.APIResponse
// @Router /token [post]
func (a *AccountController) Token(c *gin.Context) {
	var form request_models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

// Register godoc
// @Summary Register a new account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /users [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewAccountResponse(account), "Account created successfully")
}

// Me godoc
// @Summary Current account
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/me [get]
func (a *AccountController) Me(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	account, err := a.accountService.GetAccount(c.Request.Context(), principal.AccountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAccountResponse(account), "")
}

// UpdateClassLevel godoc
// @Summary Set the caller's class level
// @Description Students only
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.UpdateClassLevelRequest true "Class level"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/me/class [put]
func (a *AccountController) UpdateClassLevel(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req request_models.UpdateClassLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.UpdateClassLevel(c.Request.Context(), principal, req.ClassLevel)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAccountResponse(account), "Class level updated successfully")
}

// requirePrincipal reads the caller installed by the JWT middleware.
func requirePrincipal(c *gin.Context) (*utils.Principal, bool) {
	principal, ok := utils.CurrentPrincipal(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		c.Abort()
		return nil, false
	}
	return principal, true
}
