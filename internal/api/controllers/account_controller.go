package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"barrio/internal/models/request_models"
	"barrio/internal/models/response_models"
	"barrio/internal/services"
	"barrio/pkg/middleware"
	"barrio/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
	tokens         *utils.TokenManager
}

func NewAccountController(accountService services.AccountServiceInterface, tokens *utils.TokenManager) *AccountController {
	return &AccountController{
		accountService: accountService,
		tokens:         tokens,
	}
}

func (a *AccountController) Register(c *gin.Context) {
	var req request_models.AccountCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAccountResponse(*account), "Account created successfully")
}

// Login authenticates the credentials, sets the HTTP-only access token cookie
// and echoes the token for non-browser clients.
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	token, expiresAt, err := a.tokens.CreateToken(account.Username, string(account.Type))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetCookie(middleware.AccessTokenCookie, token, maxAge, "/", "", false, true)

	utils.RespondSuccess(c, response_models.TokenResponse{
		AccessToken:         token,
		TokenType:           "bearer",
		TokenExpirationDate: expiresAt,
	}, "Login successful")
}

func (a *AccountController) Logout(c *gin.Context) {
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
	utils.RespondSuccess(c, nil, "Logged out")
}

// Me returns the authenticated account.
func (a *AccountController) Me(c *gin.Context) {
	account := middleware.CurrentAccount(c)
	utils.RespondSuccess(c, response_models.NewAccountResponse(*account), "Fetched account successfully")
}

// List is admin-only and returns every account.
func (a *AccountController) List(c *gin.Context) {
	accounts, err := a.accountService.GetAllAccounts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAccountResponses(accounts), "Fetched accounts successfully")
}

func (a *AccountController) Get(c *gin.Context) {
	requester := middleware.CurrentAccount(c)
	id := c.Param("id")
	if id != requester.ID && !requester.IsAdmin() {
		utils.HandleServiceError(c, utils.ErrNotResourceOwner)
		return
	}

	account, err := a.accountService.GetAccount(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAccountResponse(*account), "Fetched account successfully")
}

func (a *AccountController) Update(c *gin.Context) {
	requester := middleware.CurrentAccount(c)
	id := c.Param("id")
	if id != requester.ID && !requester.IsAdmin() {
		utils.HandleServiceError(c, utils.ErrNotResourceOwner)
		return
	}

	var req request_models.AccountUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.UpdateAccount(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAccountResponse(*account), "Account updated successfully")
}

func (a *AccountController) Delete(c *gin.Context) {
	requester := middleware.CurrentAccount(c)
	id := c.Param("id")
	if id != requester.ID && !requester.IsAdmin() {
		utils.HandleServiceError(c, utils.ErrNotResourceOwner)
		return
	}

	account, err := a.accountService.DeleteAccount(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAccountResponse(*account), "Account deleted successfully")
}

// ForgotPassword never reveals whether the email exists.
func (a *AccountController) ForgotPassword(c *gin.Context) {
	var req request_models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.ForgotPassword(c.Request.Context(), req.Email); err != nil && err != utils.ErrAccountNotFound {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "If the email exists, a reset link has been sent")
}

func (a *AccountController) ResetPassword(c *gin.Context) {
	var req request_models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password reset successfully")
}

func (a *AccountController) ValidateResetToken(c *gin.Context) {
	var req request_models.ValidateResetTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	used, err := a.accountService.IsResetTokenUsed(c.Request.Context(), req.Token)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"used": used}, "Token validated")
}
