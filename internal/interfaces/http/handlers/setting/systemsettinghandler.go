package setting

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merojugx/mero/internal/application/setting/usecases"
	"github.com/merojugx/mero/internal/domain/setting"
	"github.com/merojugx/mero/internal/interfaces/dto"
	"github.com/merojugx/mero/internal/shared/logger"
	"github.com/merojugx/mero/internal/shared/utils"
)

// SystemSettingHandler serves /system-admin/settings and the public subset
// under /settings/public. Admin routes are guarded by middleware.
type SystemSettingHandler struct {
	listUC       usecases.ListSystemSettingsExecutor
	getUC        usecases.GetSystemSettingExecutor
	upsertUC     usecases.UpsertSystemSettingExecutor
	updateUC     usecases.UpdateSystemSettingExecutor
	deleteUC     usecases.DeleteSystemSettingExecutor
	listPublicUC usecases.ListPublicSettingsExecutor
	logger       logger.Interface
}

func NewSystemSettingHandler(
	listUC usecases.ListSystemSettingsExecutor,
	getUC usecases.GetSystemSettingExecutor,
	upsertUC usecases.UpsertSystemSettingExecutor,
	updateUC usecases.UpdateSystemSettingExecutor,
	deleteUC usecases.DeleteSystemSettingExecutor,
	listPublicUC usecases.ListPublicSettingsExecutor,
	logger logger.Interface,
) *SystemSettingHandler {
	return &SystemSettingHandler{
		listUC:       listUC,
		getUC:        getUC,
		upsertUC:     upsertUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		listPublicUC: listPublicUC,
		logger:       logger,
	}
}

// List handles GET /system-admin/settings?category=
func (h *SystemSettingHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), c.Query("category"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get handles GET /system-admin/settings/:key
func (h *SystemSettingHandler) Get(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), c.Param("key"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Upsert handles PUT /system-admin/settings/:key
func (h *SystemSettingHandler) Upsert(c *gin.Context) {
	actor, ok := utils.RequirePrincipal(c)
	if !ok {
		return
	}

	var req dto.UpsertSystemSettingRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.upsertUC.Execute(c.Request.Context(), usecases.UpsertSystemSettingCommand{
		Key:         c.Param("key"),
		Value:       req.Value,
		Description: req.Description,
		Category:    req.Category,
		IsPublic:    req.IsPublic,
		UpdatedBy:   actor.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("system setting written", "key", result.Key, "updated_by", actor.UserID)
	utils.SuccessResponse(c, http.StatusOK, "Setting saved successfully", result)
}

// Update handles PATCH /system-admin/settings/:key
func (h *SystemSettingHandler) Update(c *gin.Context) {
	actor, ok := utils.RequirePrincipal(c)
	if !ok {
		return
	}

	var req dto.PatchSystemSettingRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateSystemSettingCommand{
		Key: c.Param("key"),
		Patch: setting.Patch{
			Value:       req.Value,
			Description: req.Description,
			Category:    req.Category,
			IsPublic:    req.IsPublic,
		},
		UpdatedBy: actor.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Setting updated successfully", result)
}

// Delete handles DELETE /system-admin/settings/:key
func (h *SystemSettingHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("key")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// ListPublic handles GET /settings/public. No authentication.
func (h *SystemSettingHandler) ListPublic(c *gin.Context) {
	result, err := h.listPublicUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
