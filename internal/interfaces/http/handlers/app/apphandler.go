package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merojugx/mero/internal/application/app/usecases"
	"github.com/merojugx/mero/internal/interfaces/dto"
	"github.com/merojugx/mero/internal/shared/logger"
	"github.com/merojugx/mero/internal/shared/utils"
)

type AppHandler struct {
	listAppsUC        usecases.ListAppsExecutor
	updateAppAccessUC usecases.UpdateAppAccessExecutor
	logger            logger.Interface
}

func NewAppHandler(listAppsUC usecases.ListAppsExecutor, updateAppAccessUC usecases.UpdateAppAccessExecutor, logger logger.Interface) *AppHandler {
	return &AppHandler{
		listAppsUC:        listAppsUC,
		updateAppAccessUC: updateAppAccessUC,
		logger:            logger,
	}
}

// ListApps handles GET /apps
func (h *AppHandler) ListApps(c *gin.Context) {
	result, err := h.listAppsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateAccess handles PUT /organizations/:orgId/app-access
func (h *AppHandler) UpdateAccess(c *gin.Context) {
	actor, ok := utils.RequirePrincipal(c)
	if !ok {
		return
	}
	orgID, err := utils.ParseUUIDParam(c, "orgId", "organization")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateAppAccessRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update app access", "organization_id", orgID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateAppAccessUC.Execute(c.Request.Context(), usecases.UpdateAppAccessCommand{
		Actor:          actor,
		OrganizationID: orgID,
		UserID:         req.UserID,
		AppID:          req.AppID,
		RoleID:         req.RoleID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "App access updated successfully", result)
}
