package setting

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merojugx/mero/internal/application/setting/usecases"
	"github.com/merojugx/mero/internal/interfaces/dto"
	"github.com/merojugx/mero/internal/shared/logger"
	"github.com/merojugx/mero/internal/shared/utils"
)

type OrganizationSettingHandler struct {
	listUC   usecases.ListOrganizationSettingsExecutor
	upsertUC usecases.UpsertOrganizationSettingExecutor
	deleteUC usecases.DeleteOrganizationSettingExecutor
	logger   logger.Interface
}

func NewOrganizationSettingHandler(
	listUC usecases.ListOrganizationSettingsExecutor,
	upsertUC usecases.UpsertOrganizationSettingExecutor,
	deleteUC usecases.DeleteOrganizationSettingExecutor,
	logger logger.Interface,
) *OrganizationSettingHandler {
	return &OrganizationSettingHandler{
		listUC:   listUC,
		upsertUC: upsertUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// List handles GET /organizations/:orgId/settings
func (h *OrganizationSettingHandler) List(c *gin.Context) {
	actor, ok := utils.RequirePrincipal(c)
	if !ok {
		return
	}
	orgID, err := utils.ParseUUIDParam(c, "orgId", "organization")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListOrganizationSettingsQuery{
		Actor:          actor,
		OrganizationID: orgID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Upsert handles PUT /organizations/:orgId/settings/:key. It answers 201 when
// the key did not exist yet.
func (h *OrganizationSettingHandler) Upsert(c *gin.Context) {
	actor, ok := utils.RequirePrincipal(c)
	if !ok {
		return
	}
	orgID, err := utils.ParseUUIDParam(c, "orgId", "organization")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpsertSettingRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.upsertUC.Execute(c.Request.Context(), usecases.UpsertOrganizationSettingCommand{
		Actor:          actor,
		OrganizationID: orgID,
		Key:            c.Param("key"),
		Value:          req.Value,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Created {
		utils.CreatedResponse(c, result.Setting, "Setting created successfully")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Setting updated successfully", result.Setting)
}

// Delete handles DELETE /organizations/:orgId/settings/:key
func (h *OrganizationSettingHandler) Delete(c *gin.Context) {
	actor, ok := utils.RequirePrincipal(c)
	if !ok {
		return
	}
	orgID, err := utils.ParseUUIDParam(c, "orgId", "organization")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteOrganizationSettingCommand{
		Actor:          actor,
		OrganizationID: orgID,
		Key:            c.Param("key"),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
