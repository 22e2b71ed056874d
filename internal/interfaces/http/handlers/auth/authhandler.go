// Package auth serves tenant registration, login and account recovery.
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merojugx/mero/internal/application/auth/usecases"
	"github.com/merojugx/mero/internal/interfaces/dto"
	"github.com/merojugx/mero/internal/shared/constants"
	"github.com/merojugx/mero/internal/shared/logger"
	"github.com/merojugx/mero/internal/shared/utils"
)

type AuthHandler struct {
	registerUC      usecases.RegisterOrganizationExecutor
	loginUC         usecases.LoginExecutor
	refreshUC       usecases.RefreshTokenExecutor
	logoutUC        usecases.LogoutExecutor
	verifyEmailUC   usecases.VerifyEmailExecutor
	requestResetUC  usecases.RequestPasswordResetExecutor
	resetPasswordUC usecases.ResetPasswordExecutor
	logger          logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterOrganizationExecutor,
	loginUC usecases.LoginExecutor,
	refreshUC usecases.RefreshTokenExecutor,
	logoutUC usecases.LogoutExecutor,
	verifyEmailUC usecases.VerifyEmailExecutor,
	requestResetUC usecases.RequestPasswordResetExecutor,
	resetPasswordUC usecases.ResetPasswordExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUC:      registerUC,
		loginUC:         loginUC,
		refreshUC:       refreshUC,
		logoutUC:        logoutUC,
		verifyEmailUC:   verifyEmailUC,
		requestResetUC:  requestResetUC,
		resetPasswordUC: resetPasswordUC,
		logger:          logger,
	}
}

// RegisterOrganization creates an organization and its owner account
// @Summary Register an organization
// @Description Creates the organization, its owner role and the owner user. A verification email is sent to the owner.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterOrganizationRequest true "Organization and owner"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /auth/organization/register [post]
func (h *AuthHandler) RegisterOrganization(c *gin.Context) {
	var req dto.RegisterOrganizationRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterOrganizationCommand{
		Name:           req.Name,
		Slug:           req.Slug,
		OwnerEmail:     req.Email,
		OwnerPassword:  req.Password,
		OwnerFirstName: req.FirstName,
		OwnerLastName:  req.LastName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Organization registered. Check your email to verify the owner account")
}

// Login signs a member into one organization
// @Summary Log in to an organization
// @Description organization_id may be sent in the body or as a query parameter.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Param organization_id query string false "Organization ID"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	organizationID := req.OrganizationID
	if organizationID == "" {
		organizationID = c.Query("organization_id")
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:          req.Email,
		Password:       req.Password,
		OrganizationID: organizationID,
		MFACode:        req.MFACode,
		IPAddress:      c.ClientIP(),
		UserAgent:      c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setAccessCookie(c, result.AccessToken, int(result.ExpiresIn))
	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// Refresh exchanges a refresh token for a new token pair
// @Summary Refresh tokens
// @Description Each refresh token works once. Replaying a used token ends the session.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.refreshUC.Execute(c.Request.Context(), usecases.RefreshTokenCommand{RefreshToken: req.RefreshToken})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setAccessCookie(c, result.AccessToken, int(result.ExpiresIn))
	utils.SuccessResponse(c, http.StatusOK, "Token refreshed", result)
}

// Logout revokes the current session
// @Summary Log out
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	actor, ok := utils.RequirePrincipal(c)
	if !ok {
		return
	}

	if err := h.logoutUC.Execute(c.Request.Context(), usecases.LogoutCommand{Actor: actor}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setAccessCookie(c, "", -1)
	utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// VerifyEmail consumes an email verification link
// @Summary Verify email address
// @Tags auth
// @Produce json
// @Param token query string true "Verification token"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/verify-email [get]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	if err := h.verifyEmailUC.Execute(c.Request.Context(), usecases.VerifyEmailCommand{Token: c.Query("token")}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Email verified", nil)
}

// ForgotPassword mails a password reset link
// @Summary Request a password reset
// @Description Always succeeds so the response does not reveal which addresses are registered.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Email"
// @Success 200 {object} utils.APIResponse
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.requestResetUC.Execute(c.Request.Context(), usecases.RequestPasswordResetCommand{Email: req.Email}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "If the address is registered, a reset link has been sent", nil)
}

// ResetPassword sets a new password from a reset link
// @Summary Reset password
// @Description Signs the user out of every session.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.resetPasswordUC.Execute(c.Request.Context(), usecases.ResetPasswordCommand{
		Token:       req.Token,
		NewPassword: req.Password,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password has been reset", nil)
}

// setAccessCookie mirrors the access token into an HttpOnly cookie; a
// negative maxAge clears it.
func (h *AuthHandler) setAccessCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.AccessTokenCookie, token, maxAge, "/", "", c.Request.TLS != nil, true)
}
