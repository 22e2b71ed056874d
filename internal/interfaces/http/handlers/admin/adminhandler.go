package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merojugx/mero/internal/application/admin/usecases"
	"github.com/merojugx/mero/internal/interfaces/dto"
	"github.com/merojugx/mero/internal/shared/constants"
	"github.com/merojugx/mero/internal/shared/logger"
	"github.com/merojugx/mero/internal/shared/utils"
)

type AdminHandler struct {
	loginUC          usecases.AdminLoginExecutor
	setSystemAdminUC usecases.SetSystemAdminExecutor
	statsUC          usecases.GetPlatformStatsExecutor
	logger           logger.Interface
}

func NewAdminHandler(
	loginUC usecases.AdminLoginExecutor,
	setSystemAdminUC usecases.SetSystemAdminExecutor,
	statsUC usecases.GetPlatformStatsExecutor,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		loginUC:          loginUC,
		setSystemAdminUC: setSystemAdminUC,
		statsUC:          statsUC,
		logger:           logger,
	}
}

// Login handles POST /system-admin/auth/login. The access token is returned
// in the body and also set as an HttpOnly cookie for the admin console.
// @Summary System admin login
// @Tags system-admin
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /system-admin/auth/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.AdminLoginCommand{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.AccessTokenCookie, result.AccessToken, int(result.ExpiresIn), "/", "", c.Request.TLS != nil, true)

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// SetSystemAdmin handles PUT /system-admin/users/:userId/system-admin
// @Summary Grant or revoke a system admin role
// @Description Revokes every session of the target user so the new role applies at next login.
// @Tags system-admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param request body dto.SetSystemAdminRequest true "Role, empty to revoke"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /system-admin/users/{userId}/system-admin [put]
func (h *AdminHandler) SetSystemAdmin(c *gin.Context) {
	actor, ok := utils.RequirePrincipal(c)
	if !ok {
		return
	}
	userID, err := utils.ParseUUIDParam(c, "userId", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.SetSystemAdminRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.setSystemAdminUC.Execute(c.Request.Context(), usecases.SetSystemAdminCommand{
		Actor:  actor,
		UserID: userID,
		Role:   req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "System admin role granted"
	if req.Role == "" {
		message = "System admin role revoked"
	}
	utils.SuccessResponse(c, http.StatusOK, message, result)
}

// GetStats handles GET /system-admin/stats
// @Summary Platform statistics
// @Tags system-admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /system-admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
