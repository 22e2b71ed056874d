package organization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	orgusecases "github.com/merojugx/mero/internal/application/organization/usecases"
	roleusecases "github.com/merojugx/mero/internal/application/role/usecases"
	warehouseusecases "github.com/merojugx/mero/internal/application/warehouse/usecases"
	"github.com/merojugx/mero/internal/interfaces/dto"
	"github.com/merojugx/mero/internal/shared/logger"
	"github.com/merojugx/mero/internal/shared/utils"
)

// OrganizationHandler serves the /organizations/:orgId resources that are not
// settings or app access.
type OrganizationHandler struct {
	updateSlugUC     orgusecases.UpdateOrganizationSlugExecutor
	listRolesUC      roleusecases.ListRolesExecutor
	setHierarchyUC   roleusecases.SetRoleHierarchyLevelExecutor
	listWarehousesUC warehouseusecases.ListWarehousesExecutor
	logger           logger.Interface
}

func NewOrganizationHandler(
	updateSlugUC orgusecases.UpdateOrganizationSlugExecutor,
	listRolesUC roleusecases.ListRolesExecutor,
	setHierarchyUC roleusecases.SetRoleHierarchyLevelExecutor,
	listWarehousesUC warehouseusecases.ListWarehousesExecutor,
	logger logger.Interface,
) *OrganizationHandler {
	return &OrganizationHandler{
		updateSlugUC:     updateSlugUC,
		listRolesUC:      listRolesUC,
		setHierarchyUC:   setHierarchyUC,
		listWarehousesUC: listWarehousesUC,
		logger:           logger,
	}
}

type slugResponse struct {
	OrganizationID string `json:"organization_id"`
	Slug           string `json:"slug"`
	Changed        bool   `json:"changed"`
}

// UpdateSlug handles PUT /organizations/:orgId/slug
// @Summary Change the organization slug
// @Tags organizations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID"
// @Param request body dto.UpdateOrganizationSlugRequest true "New slug"
// @Success 200 {object} utils.APIResponse{data=slugResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /organizations/{orgId}/slug [put]
func (h *OrganizationHandler) UpdateSlug(c *gin.Context) {
	actor, ok := utils.RequirePrincipal(c)
	if !ok {
		return
	}
	orgID, err := utils.ParseUUIDParam(c, "orgId", "organization")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateOrganizationSlugRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update slug", "organization_id", orgID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateSlugUC.Execute(c.Request.Context(), orgusecases.UpdateOrganizationSlugCommand{
		Actor:          actor,
		OrganizationID: orgID,
		Slug:           req.Slug,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Organization slug updated successfully", slugResponse{
		OrganizationID: result.OrganizationID,
		Slug:           result.Slug,
		Changed:        result.Changed,
	})
}

// ListRoles handles GET /organizations/:orgId/roles
func (h *OrganizationHandler) ListRoles(c *gin.Context) {
	actor, ok := utils.RequirePrincipal(c)
	if !ok {
		return
	}
	orgID, err := utils.ParseUUIDParam(c, "orgId", "organization")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listRolesUC.Execute(c.Request.Context(), roleusecases.ListRolesQuery{
		Actor:          actor,
		OrganizationID: orgID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SetRoleHierarchy handles PUT /organizations/:orgId/roles/:roleId/hierarchy
func (h *OrganizationHandler) SetRoleHierarchy(c *gin.Context) {
	actor, ok := utils.RequirePrincipal(c)
	if !ok {
		return
	}
	orgID, err := utils.ParseUUIDParam(c, "orgId", "organization")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	roleID, err := utils.ParseUUIDParam(c, "roleId", "role")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.SetRoleHierarchyRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.setHierarchyUC.Execute(c.Request.Context(), roleusecases.SetRoleHierarchyLevelCommand{
		Actor:          actor,
		OrganizationID: orgID,
		RoleID:         roleID,
		Level:          req.Level,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Role hierarchy updated successfully", result)
}

// ListWarehouses handles GET /organizations/:orgId/warehouses?type=
func (h *OrganizationHandler) ListWarehouses(c *gin.Context) {
	actor, ok := utils.RequirePrincipal(c)
	if !ok {
		return
	}
	orgID, err := utils.ParseUUIDParam(c, "orgId", "organization")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listWarehousesUC.Execute(c.Request.Context(), warehouseusecases.ListWarehousesQuery{
		Actor:          actor,
		OrganizationID: orgID,
		Type:           c.Query("type"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
