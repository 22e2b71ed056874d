package upload

import (
	"github.com/gin-gonic/gin"

	"github.com/merojugx/mero/internal/application/upload/usecases"
	"github.com/merojugx/mero/internal/interfaces/dto"
	"github.com/merojugx/mero/internal/shared/logger"
	"github.com/merojugx/mero/internal/shared/utils"
)

// UploadHandler records metadata for files already pushed to object storage.
type UploadHandler struct {
	registerUC usecases.RegisterUploadExecutor
	logger     logger.Interface
}

func NewUploadHandler(registerUC usecases.RegisterUploadExecutor, logger logger.Interface) *UploadHandler {
	return &UploadHandler{
		registerUC: registerUC,
		logger:     logger,
	}
}

// RegisterMetadata handles POST /uploads/metadata
func (h *UploadHandler) RegisterMetadata(c *gin.Context) {
	actor, ok := utils.RequirePrincipal(c)
	if !ok {
		return
	}

	var req dto.FileUploadMetadata
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterUploadCommand{
		Actor:        actor,
		Name:         req.Name,
		MimeType:     req.MimeType,
		Size:         req.Size,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "File metadata recorded")
}
