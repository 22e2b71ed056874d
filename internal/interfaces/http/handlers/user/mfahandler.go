package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merojugx/mero/internal/application/user/usecases"
	"github.com/merojugx/mero/internal/interfaces/dto"
	"github.com/merojugx/mero/internal/shared/logger"
	"github.com/merojugx/mero/internal/shared/utils"
)

type MFAHandler struct {
	statusUC     usecases.GetMFAStatusExecutor
	setupUC      usecases.SetupMFAExecutor
	verifyUC     usecases.VerifyMFASetupExecutor
	regenerateUC usecases.RegenerateBackupCodesExecutor
	disableMFAUC usecases.DisableMFAExecutor
	logger       logger.Interface
}

func NewMFAHandler(
	statusUC usecases.GetMFAStatusExecutor,
	setupUC usecases.SetupMFAExecutor,
	verifyUC usecases.VerifyMFASetupExecutor,
	regenerateUC usecases.RegenerateBackupCodesExecutor,
	disableMFAUC usecases.DisableMFAExecutor,
	logger logger.Interface,
) *MFAHandler {
	return &MFAHandler{
		statusUC:     statusUC,
		setupUC:      setupUC,
		verifyUC:     verifyUC,
		regenerateUC: regenerateUC,
		disableMFAUC: disableMFAUC,
		logger:       logger,
	}
}

// Status reports whether MFA is enabled for the caller
// @Summary MFA status of the current user
// @Tags mfa
// @Security BearerAuth
// @Produce json
// @Success 200 {object} utils.APIResponse{data=usecases.MFAStatusResult}
// @Router /mfa/check [get]
func (h *MFAHandler) Status(c *gin.Context) {
	actor, ok := utils.RequirePrincipal(c)
	if !ok {
		return
	}

	result, err := h.statusUC.Execute(c.Request.Context(), usecases.GetMFAStatusCommand{Actor: actor})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// InitializeSetup starts MFA enrollment
// @Summary Start MFA enrollment
// @Description Returns a new TOTP secret and its otpauth:// URL. The secret is inactive until verified.
// @Tags mfa
// @Security BearerAuth
// @Produce json
// @Success 200 {object} utils.APIResponse{data=usecases.SetupMFAResult}
// @Failure 409 {object} utils.APIResponse
// @Router /mfa/setup/initialize [post]
func (h *MFAHandler) InitializeSetup(c *gin.Context) {
	actor, ok := utils.RequirePrincipal(c)
	if !ok {
		return
	}

	result, err := h.setupUC.Execute(c.Request.Context(), usecases.SetupMFACommand{Actor: actor})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Scan the QR code with your authenticator app", result)
}

// VerifySetup confirms enrollment with a TOTP code
// @Summary Confirm MFA enrollment
// @Description Enables MFA and returns backup codes. They are shown only once.
// @Tags mfa
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.VerifyMFARequest true "TOTP code"
// @Success 200 {object} utils.APIResponse{data=usecases.BackupCodesResult}
// @Failure 401 {object} utils.APIResponse
// @Router /mfa/setup/verify [post]
func (h *MFAHandler) VerifySetup(c *gin.Context) {
	actor, ok := utils.RequirePrincipal(c)
	if !ok {
		return
	}

	var req dto.VerifyMFARequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.verifyUC.Execute(c.Request.Context(), usecases.VerifyMFASetupCommand{
		Actor: actor,
		Code:  req.Code,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Two-factor authentication enabled", result)
}

// RegenerateBackupCodes replaces every backup code
// @Summary Replace all backup codes
// @Tags mfa
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.VerifyMFARequest true "TOTP code"
// @Success 200 {object} utils.APIResponse{data=usecases.BackupCodesResult}
// @Router /mfa/backup-codes/regenerate [post]
func (h *MFAHandler) RegenerateBackupCodes(c *gin.Context) {
	actor, ok := utils.RequirePrincipal(c)
	if !ok {
		return
	}

	var req dto.VerifyMFARequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.regenerateUC.Execute(c.Request.Context(), usecases.RegenerateBackupCodesCommand{
		Actor: actor,
		Code:  req.Code,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Backup codes regenerated", result)
}

// Disable turns MFA off
// @Summary Disable MFA
// @Tags mfa
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.DisableMFARequest true "TOTP or backup code"
// @Success 200 {object} utils.APIResponse
// @Router /mfa/disable [post]
func (h *MFAHandler) Disable(c *gin.Context) {
	actor, ok := utils.RequirePrincipal(c)
	if !ok {
		return
	}

	var req dto.DisableMFARequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.disableMFAUC.Execute(c.Request.Context(), usecases.DisableMFACommand{
		Actor: actor,
		Code:  req.Code,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Two-factor authentication disabled", nil)
}
